package dto

type ProductResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
}

type GetCategoriesResponse struct {
	Categories []string `json:"categories"`
}
