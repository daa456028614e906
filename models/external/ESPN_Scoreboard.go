package external

type ESPN_Scoreboard struct {
	Day struct {
		Date string `json:"date"`
	} `json:"day"`
	Events []ESPN_Event `json:"events"`
}
