package service

import (
	"context"

	"github.com/foomo/workspace-sidebar/render"
	"github.com/foomo/workspace-sidebar/service/vo"
	"github.com/foomo/workspace-sidebar/sidebar"
	"github.com/foomo/workspace-sidebar/state"
	"github.com/foomo/workspace-sidebar/workspace"
)

type Service interface {
	GetSidebar(ctx context.Context) (*vo.Sidebar, error)
	ToggleItem(ctx context.Context, title string) (*vo.ToggleResult, error)
	RenderHTML(ctx context.Context) (string, error)
	RenderMarkdown(ctx context.Context) (vo.Markdown, error)
}

type service struct {
	workspaceClient *workspace.Client
	stateStore      state.Store
}

func NewService(workspaceClient *workspace.Client, stateStore state.Store) Service {
	return &service{
		workspaceClient: workspaceClient,
		stateStore:      stateStore,
	}
}

// tree fetches the page list and assembles the forest with the persisted
// expansion state applied. Every call rebuilds from scratch; there is no
// incremental update path.
func (s *service) tree(ctx context.Context) ([]*sidebar.Node, sidebar.Expansion, error) {
	pages, err := s.workspaceClient.GetPages(ctx)
	if err != nil {
		return nil, nil, err
	}
	expansion, err := s.stateStore.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	roots := sidebar.BuildTree(pages)
	sidebar.ApplyExpansion(roots, expansion)
	return roots, expansion, nil
}

func (s *service) GetSidebar(ctx context.Context) (*vo.Sidebar, error) {
	roots, expansion, err := s.tree(ctx)
	if err != nil {
		return nil, err
	}
	return &vo.Sidebar{
		Items:    mapNodes(roots),
		Expanded: expansion,
	}, nil
}

func (s *service) ToggleItem(ctx context.Context, title string) (*vo.ToggleResult, error) {
	expansion, err := s.stateStore.Load(ctx)
	if err != nil {
		return nil, err
	}
	expanded := expansion.Toggle(title)
	if err := s.stateStore.Save(ctx, expansion); err != nil {
		return nil, err
	}
	return &vo.ToggleResult{
		Title:    title,
		Expanded: expanded,
		Items:    expansion,
	}, nil
}

func (s *service) RenderHTML(ctx context.Context) (string, error) {
	roots, _, err := s.tree(ctx)
	if err != nil {
		return "", err
	}
	return render.HTML(roots)
}

func (s *service) RenderMarkdown(ctx context.Context) (vo.Markdown, error) {
	roots, _, err := s.tree(ctx)
	if err != nil {
		return "", err
	}
	markdown, err := render.Markdown(roots)
	if err != nil {
		return "", err
	}
	return vo.Markdown(markdown), nil
}

func mapNodes(nodes []*sidebar.Node) []vo.SidebarNode {
	if len(nodes) == 0 {
		return nil
	}
	mapped := make([]vo.SidebarNode, len(nodes))
	for i, node := range nodes {
		mapped[i] = vo.SidebarNode{
			Title:      node.Item.Title,
			Link:       node.Item.Link(),
			Icon:       node.Item.Icon,
			Public:     node.Item.Public,
			IsEditable: node.Item.IsEditable,
			Selected:   node.Item.Selected,
			Expanded:   node.Expanded,
			Children:   mapNodes(node.Children),
		}
	}
	return mapped
}
