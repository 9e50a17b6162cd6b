package category

// Find searches the tree depth-first for id.
func Find(tree []Category, id string) (*Category, bool) {
	for i := range tree {
		if tree[i].ID == id {
			return &tree[i], true
		}
		if c, ok := Find(tree[i].SubCategories, id); ok {
			return c, true
		}
	}
	return nil, false
}

// Path returns the chain of categories from a root down to id, for
// breadcrumbs. It is nil when id is not in the tree.
func Path(tree []Category, id string) []Category {
	for _, c := range tree {
		if c.ID == id {
			return []Category{c}
		}
		if sub := Path(c.SubCategories, id); sub != nil {
			return append([]Category{c}, sub...)
		}
	}
	return nil
}

// Attach adds c under its parent when the parent is in the tree, otherwise
// at the top level. It reports whether a parent was found.
func Attach(tree []Category, c Category) ([]Category, bool) {
	if c.ParentCategoryID != nil && *c.ParentCategoryID != "" {
		if parent, ok := Find(tree, *c.ParentCategoryID); ok {
			parent.SubCategories = append(parent.SubCategories, c)
			return tree, true
		}
	}
	return append(tree, c), false
}

// Flatten lists every category depth-first with its depth.
func Flatten(tree []Category) []Flat {
	var out []Flat
	var walk func([]Category, int)
	walk = func(level []Category, depth int) {
		for _, c := range level {
			out = append(out, Flat{Category: c, Depth: depth})
			walk(c.SubCategories, depth+1)
		}
	}
	walk(tree, 0)
	return out
}

type Flat struct {
	Category Category
	Depth    int
}
