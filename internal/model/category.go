package model

// swagger:model Category
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c *Category) GetID() int64   { return c.ID }
func (c *Category) SetID(id int64) { c.ID = id }
