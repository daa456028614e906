package external

type ESPN_Comp struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	NeutralSite bool              `json:"neutralSite"`
	Competitors []ESPN_Competitor `json:"competitors"`
	Status      ESPN_Status       `json:"status"`
}

type ESPN_Competitor struct {
	ID       string    `json:"id"`
	HomeAway string    `json:"homeAway"`
	Winner   bool      `json:"winner"`
	Score    string    `json:"score"`
	Team     ESPN_Team `json:"team"`
}
