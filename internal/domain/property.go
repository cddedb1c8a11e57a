package domain

// PropertySummary is the short record returned by listing and search.
type PropertySummary struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`
}

// PropertyDetail is the full record fetched on demand per identifier.
type PropertyDetail struct {
	PropertySummary
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      float64  `json:"bathrooms"`
	SqFt           float64  `json:"sqft"`
	Amenities      []string `json:"amenities"`
	SchoolRating   float64  `json:"school_rating"`
	CommuteMinutes float64  `json:"commute_minutes"`
	HasGarage      bool     `json:"has_garage"`
	HasGarden      bool     `json:"has_garden"`
	HasPool        bool     `json:"has_pool"`
	YearBuilt      int      `json:"year_built"`
	Images         []string `json:"images"`
}

type ListResponse struct {
	Status          string            `json:"status"`
	TotalProperties int               `json:"total_properties"`
	Properties      []PropertySummary `json:"properties"`
}

type DetailResponse struct {
	Status   string         `json:"status"`
	Property PropertyDetail `json:"property"`
}

type CompareRequest struct {
	ID1 int64 `json:"id1"`
	ID2 int64 `json:"id2"`
}

// CompareResponse carries both full records plus the backend's numeric
// difference summary. Per-attribute winners are re-derived locally.
type CompareResponse struct {
	Status            string             `json:"status"`
	Property1         PropertyDetail     `json:"property1"`
	Property2         PropertyDetail     `json:"property2"`
	ComparisonSummary map[string]float64 `json:"comparison_summary"`
}

type SearchRequest struct {
	Location    string  `json:"location"`
	Budget      float64 `json:"budget"`
	Preferences string  `json:"preferences,omitempty"`
}

type PredictRequest struct {
	Location  string  `json:"location"`
	SqFt      float64 `json:"sqft"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms float64 `json:"bathrooms"`
	YearBuilt int     `json:"year_built"`
}

type PredictResponse struct {
	Status         string         `json:"status"`
	PredictedPrice float64        `json:"predicted_price"`
	InputData      map[string]any `json:"input_data"`
	ModelInfo      map[string]any `json:"model_info,omitempty"`
}

type RecommendRequest struct {
	UserBudget      float64 `json:"user_budget"`
	UserMinBedrooms int     `json:"user_min_bedrooms"`
}

// Recommendation is one scored tuple from the recommendation engine.
// Scores and metadata are displayed as received, never interpreted.
type Recommendation struct {
	Property   PropertySummary    `json:"property"`
	Details    PropertyDetail     `json:"details"`
	Scores     map[string]float64 `json:"scores"`
	TotalScore float64            `json:"total_score"`
}

type RecommendResponse struct {
	Status                string           `json:"status"`
	TotalProperties       int              `json:"total_properties"`
	RecommendedProperties []Recommendation `json:"recommended_properties"`
	CacheInfo             map[string]any   `json:"cache_info,omitempty"`
	PerformanceMetrics    map[string]any   `json:"performance_metrics,omitempty"`
}
