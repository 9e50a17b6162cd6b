package category

type Category struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Description      *string    `json:"description,omitempty"`
	ImageURL         *string    `json:"imageUrl,omitempty"`
	ParentCategoryID *string    `json:"parentCategoryId,omitempty"`
	ProductCount     int        `json:"productCount"`
	SubCategories    []Category `json:"subCategories"`
}

// Clone deep-copies the subtree.
func (c Category) Clone() Category {
	c.SubCategories = cloneTree(c.SubCategories)
	return c
}

type CreateCategoryRequest struct {
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	ImageURL         *string `json:"imageUrl,omitempty"`
	ParentCategoryID *string `json:"parentCategoryId,omitempty"`
	DisplayOrder     int     `json:"displayOrder"`
}

func cloneTree(in []Category) []Category {
	if in == nil {
		return nil
	}
	out := make([]Category, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
