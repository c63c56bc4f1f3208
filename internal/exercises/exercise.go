package exercises

// Exercise is a catalog entry, not a performed exercise. Performed
// exercises live under workouts.
type Exercise struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	BodyGroupID   int    `json:"bodyGroupId"`
	BodyGroupName string `json:"bodyGroup"`
	ImagePublicID string `json:"-"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

type BodyGroup struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Subgroup string `json:"subgroup,omitempty"`
}

type BodyPartStats struct {
	TotalSets int `json:"totalSets"`
}
