package doc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldline/doc"
	"fieldline/field"
	"fieldline/node"
)

type names struct {
	Initials string
	Display  string
}

type account struct {
	DN    string
	Login string
	Phone string
	Names names
}

func accountsNode() node.Node[[]account, *doc.Document] {
	results := field.OfNames("accounts", "results")
	item := field.OfNames("account", "ldapItem")
	id := field.OfNames("DN", "id")
	login := field.OfNames("Login", "login")
	phone := field.OfNames("Phone", "phoneNo")
	namesField := field.OfNames("Names", "names")
	initials := field.OfNames("Initials", "initials")
	display := field.OfNames("Display", "displayName")

	nonEmpty := func(s string) (string, bool) { return s, s != "" }

	namesNode := node.MapContext(node.Of[names, *doc.Element](namesField), doc.Child(namesField)).
		Fields(
			node.LookupAny(initials, func(n names) (string, bool) { return nonEmpty(n.Initials) }, doc.Attribute(initials)),
			node.LookupAny(display, func(n names) (string, bool) { return nonEmpty(n.Display) }, doc.Text(display)),
			node.ContextOf[names](field.Empty(), doc.DetachIfEmpty),
		).
		Build()

	itemNode := node.MapContextF(node.Of[account, *doc.Element](item), func(f field.Field, e *doc.Element) (*doc.Element, error) {
		return e.AddChild(f.ExternalName()), nil
	}).
		Fields(
			node.ExtractAny(id, func(a account) string { return a.DN }, doc.Attribute(id)),
			node.ExtractAny(login, func(a account) string { return a.Login }, doc.Text(login)).
				Decorate(strings.ToLower),
			node.LookupAny(phone, func(a account) (string, bool) { return nonEmpty(a.Phone) }, doc.Text(phone)),
			node.MapSource(node.Of[account, *doc.Element](namesField), node.Lift(func(a account) names { return a.Names })).
				MustPipeTo(namesNode),
		).
		Build()

	return node.FlatMap(
		node.MapContext(node.Of[[]account, *doc.Document](results), doc.Root(results)),
		func(a []account) ([]account, error) { return a, nil },
	).PipeTo(itemNode)
}

func TestAccountsDocument(t *testing.T) {
	t.Parallel()

	d := doc.New()
	err := accountsNode().Process([]account{
		{DN: "CN=Brian", Login: "Goetz", Phone: "+1888"},
		{DN: "CN=Harry", Login: "Potter", Names: names{Initials: "HP", Display: "Harry"}},
	}, d)
	require.NoError(t, err)

	require.NotNil(t, d.Root)
	assert.Equal(t, "results", d.Root.Name)
	require.Len(t, d.Root.Children, 2)

	brian := d.Root.Children[0]
	assert.Equal(t, "ldapItem", brian.Name)
	assert.Same(t, d.Root, brian.Parent())
	assert.Empty(t, brian.Find("names"), "empty element must be detached")

	harry := d.Root.Children[1]
	require.Len(t, harry.Find("names"), 1)
	initials, ok := harry.Find("names")[0].Attr("initials")
	assert.True(t, ok)
	assert.Equal(t, "HP", initials)

	out, err := d.XML("")
	require.NoError(t, err)
	assert.Equal(t, `<results>`+
		`<ldapItem id="CN=Brian"><login>goetz</login><phoneNo>+1888</phoneNo></ldapItem>`+
		`<ldapItem id="CN=Harry"><login>potter</login><names initials="HP"><displayName>Harry</displayName></names></ldapItem>`+
		`</results>`, out)
}

func TestEmptyInputLeavesDocumentUntouched(t *testing.T) {
	t.Parallel()

	d := doc.New()
	require.NoError(t, accountsNode().Process([]account{}, d))
	assert.Nil(t, d.Root)

	out, err := d.XML("  ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootConflict(t *testing.T) {
	t.Parallel()

	d := &doc.Document{Root: doc.NewElement("other")}
	err := accountsNode().Process([]account{{DN: "x"}}, d)

	require.Error(t, err)
	assert.ErrorIs(t, err, node.ErrTransform)
	assert.Len(t, node.StackOf(err), 1)
}

func TestAttrRejectsComposite(t *testing.T) {
	t.Parallel()

	e := doc.NewElement("e")
	err := doc.Attribute(field.Of("a"))(struct{}{}, e)
	require.Error(t, err)
	assert.False(t, errors.Is(err, node.ErrWrite))
	assert.True(t, e.IsEmpty())
}

func TestIndentedXML(t *testing.T) {
	t.Parallel()

	d := doc.New()

	root, err := doc.Root(field.Of("results"))(d)
	require.NoError(t, err)

	el := root.AddChild("item")
	el.SetAttr("id", "0")
	el.SetAttr("id", "1")
	require.NoError(t, doc.Text(field.Of("login"))("a", el))

	out, err := d.XML("  ")
	require.NoError(t, err)
	assert.Equal(t, "<results>\n  <item id=\"1\">\n    <login>a</login>\n  </item>\n</results>", out)

	el.Detach()
	assert.True(t, root.IsEmpty())
	assert.Nil(t, el.Parent())
}
