package models

// FilterSelection is one browse request's facet state. An empty string means
// the facet is unset and imposes no constraint.
type FilterSelection struct {
	Category string `json:"category,omitempty" form:"category"`
	District string `json:"district,omitempty" form:"district"`
	Query    string `json:"query,omitempty" form:"q"`
}

// IsEmpty reports whether no facet is set, i.e. the selection matches everything.
func (s FilterSelection) IsEmpty() bool {
	return s.Category == "" && s.District == "" && s.Query == ""
}
