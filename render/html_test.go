package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foomo/workspace-sidebar/sidebar"
)

func testTree(t *testing.T, expansion sidebar.Expansion) []*sidebar.Node {
	t.Helper()
	items := []sidebar.PageItem{
		{Title: "Home", Public: true, Icon: "home"},
		{Title: "Projects"},
		{Title: "Website", ParentPage: "Projects"},
	}
	roots := sidebar.BuildTree(items)
	sidebar.ApplyExpansion(roots, expansion)
	return roots
}

func TestSectionOwnershipPath(t *testing.T) {
	section := Section(testTree(t, nil))

	projects, err := FindByAttr(section, AttrName, "Projects")
	require.NoError(t, err)

	children, err := FindByClass(projects, ClassChildren)
	require.NoError(t, err)

	website, err := FindByAttr(children, AttrName, "Website")
	require.NoError(t, err)
	require.Equal(t, "Projects", Attr(website, AttrParent))
}

func TestSectionDataAttributes(t *testing.T) {
	section := Section(testTree(t, nil))

	home, err := FindByAttr(section, AttrName, "Home")
	require.NoError(t, err)
	require.Equal(t, "", Attr(home, AttrParent))
	require.Equal(t, "true", Attr(home, AttrPublic))

	icon, err := FindByClass(home, ClassItemIcon)
	require.NoError(t, err)
	require.Equal(t, "home", Attr(icon, AttrItemIsIcon))
}

func TestSectionCollapsedByDefault(t *testing.T) {
	section := Section(testTree(t, nil))

	children, err := FindByClass(section, ClassChildren)
	require.NoError(t, err)
	require.True(t, HasClass(children, ClassHidden))
}

func TestSectionPersistedExpansionVisibleOnInitialRender(t *testing.T) {
	section := Section(testTree(t, sidebar.Expansion{"Projects"}))

	children, err := FindByClass(section, ClassChildren)
	require.NoError(t, err)
	require.False(t, HasClass(children, ClassHidden))
}

func TestSectionDropIconOnlyOnParents(t *testing.T) {
	section := Section(testTree(t, nil))

	projects, err := FindByAttr(section, AttrName, "Projects")
	require.NoError(t, err)
	_, err = FindByClass(projects, ClassDropIcon)
	require.NoError(t, err)

	website, err := FindByAttr(section, AttrName, "Website")
	require.NoError(t, err)
	_, err = FindByClass(website, ClassDropIcon)
	require.Error(t, err)
}

func TestHTML(t *testing.T) {
	out, err := HTML(testTree(t, nil))
	require.NoError(t, err)
	require.Contains(t, out, `class="sidebar-section"`)
	require.Contains(t, out, `data-name="Website"`)
	require.Contains(t, out, `href="/workspace/website"`)
}

func TestFindBySelector(t *testing.T) {
	section := Section(testTree(t, nil))

	byClass, err := FindBySelector(section, "."+ClassAnchor)
	require.NoError(t, err)
	require.Equal(t, "a", byClass.Data)

	byTag, err := FindBySelector(section, "span")
	require.NoError(t, err)
	require.Equal(t, "span", byTag.Data)

	_, err = FindBySelector(section, "#missing")
	require.Error(t, err)
}

func TestMarkdownOutline(t *testing.T) {
	out, err := Markdown(testTree(t, nil))
	require.NoError(t, err)
	require.Contains(t, out, "[Home](/workspace/home)")
	require.Contains(t, out, "[Projects](/workspace/projects)")
	require.Contains(t, out, "[Website](/workspace/website)")
}
