// Package turso pushes local JSON snapshots into a Turso database over
// its HTTP pipeline API.
package turso

// Arg is one positional statement argument with its wire type. Values are
// always transmitted as strings, integers included.
type Arg struct {
	Type  string `json:"type"` // "text" or "integer"
	Value string `json:"value"`
}

// Text returns a text-typed argument.
func Text(value string) Arg {
	return Arg{Type: "text", Value: value}
}

// Integer returns an integer-typed argument.
func Integer(value int64) Arg {
	return Arg{Type: "integer", Value: intString(value)}
}

// Stmt is one parameterized SQL statement.
type Stmt struct {
	SQL  string `json:"sql"`
	Args []Arg  `json:"args,omitempty"`
}

// pipelineRequest is the body posted to /v2/pipeline: every statement as
// an execute step, then a close step.
type pipelineRequest struct {
	Requests []pipelineStep `json:"requests"`
}

type pipelineStep struct {
	Type string `json:"type"` // "execute" or "close"
	Stmt *Stmt  `json:"stmt,omitempty"`
}

// Show mirrors one record of shows.json.
type Show struct {
	Title string   `json:"title"`
	Date  string   `json:"date"`
	Image string   `json:"image"`
	RSVP  int64    `json:"rsvp"`
	Tags  []string `json:"tags"`
}

// Item mirrors one record of listings.json.
type Item struct {
	Title         string   `json:"title"`
	Price         string   `json:"price"`
	BinPrice      string   `json:"binPrice"`
	BuyingOptions []string `json:"buyingOptions"`
	Bids          int64    `json:"bids"`
	EndDate       string   `json:"endDate"`
	Image         string   `json:"image"`
	URL           string   `json:"url"`
	Platform      string   `json:"platform"`
}
