package models

import "encoding/json"

// ChatRequest is a question for the sustainability assistant
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatResponse carries the assistant answer
type ChatResponse struct {
	Answer string `json:"answer"`
}

// Metric is a dashboard headline figure
type Metric struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Color  string `json:"color"`
}

// Investment is a sustainable investment suggestion
type Investment struct {
	Name                 string  `json:"name"`
	Ticker               string  `json:"ticker"`
	Price                float64 `json:"price"`
	MarketCap            string  `json:"market_cap"`
	SustainabilityRating int     `json:"sustainability_rating"`
	Sector               string  `json:"sector"`
	PotentialImprovement int     `json:"potential_improvement"`
}

// Tip is a short sustainability recommendation
type Tip struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ScorePoint is one month of the sustainability score chart
type ScorePoint struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Dashboard aggregates everything the home view renders
type Dashboard struct {
	Metrics     []Metric       `json:"metrics"`
	Investments []Investment   `json:"investments"`
	Tips        []Tip          `json:"tips"`
	Chart       []ScorePoint   `json:"chart"`
	Finance     FinanceSummary `json:"finance"`
}

// AssistantFixtures holds the JSON datasets included in every assistant prompt
type AssistantFixtures struct {
	Transactions json.RawMessage
	Brands       json.RawMessage
	Stores       json.RawMessage
}
