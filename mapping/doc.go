// Package mapping builds pipelines from declarative YAML mapping files.
//
// A mapping file lists named mappings. Every mapping compiles to one
// node.Node[any, target.Map] that reads its source reflectively (struct
// fields and string-keyed map entries) and writes nested maps.
//
// # Schema Overview
//
//	version: "1"
//	naming: snake                # default external naming style
//	mappings:
//	  - name: Order
//	    target: order
//	    # Simplified 1:1 mappings, expanded before fields
//	    121:
//	      OrderID: id
//	    fields:
//	      - source: Customer.Name  # nested source path
//	        target: customer
//	        transform: [trim, upper]
//	      - source: Status
//	        default: pending       # written when the source is missing
//	      - source: Shipping       # nested object
//	        fields:
//	          - source: City
//	      - source: Items[]        # one element map per item
//	        target: items
//	        fields:
//	          - source: ProductID
//	      - source: Tags[]         # raw element values
//	      - source: Items[].SKU    # one value per item
//	        target: skus
//
// Transforms are looked up by name in a Registry. Validate reports problems
// as diagnostics, with suggestions for misspelled transform names.
package mapping
