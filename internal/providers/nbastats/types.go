package nbastats

type playerStatsResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Pts         float64 `json:"pts"`
	Fga         float64 `json:"fga"`
	FgPct       float64 `json:"fg_pct"`
	Fg3a        float64 `json:"fg3a"`
	Fg3Pct      float64 `json:"fg3_pct"`
	Ast         float64 `json:"ast"`
	Tov         float64 `json:"tov"`
	AstPct      float64 `json:"ast_pct"`
	UsgPct      float64 `json:"usg_pct"`
	Reb         float64 `json:"reb"`
	Oreb        float64 `json:"oreb"`
	OrebPct     float64 `json:"oreb_pct"`
	Blk         float64 `json:"blk"`
	Stl         float64 `json:"stl"`
	DfgPct      float64 `json:"dfg_pct"`
	Deflections float64 `json:"deflections"`
	Per         float64 `json:"per"`
	NetRating   float64 `json:"net_rating"`
	Min         float64 `json:"min"`
}

type teamStatsResponse struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Fg3PctRank        int     `json:"fg3_pct_rank"`
	RebRank           int     `json:"reb_rank"`
	AstRank           int     `json:"ast_rank"`
	PaceRank          int     `json:"pace_rank"`
	DefRatingRank     int     `json:"def_rating_rank"`
	OffRatingRank     int     `json:"off_rating_rank"`
	Pace              float64 `json:"pace"`
	Fg3Pct            float64 `json:"fg3_pct"`
	BallDominantCount int     `json:"ball_dominant_count"`
}

type playerSearchResponse struct {
	Data []playerSearchRow `json:"data"`
}

type playerSearchRow struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
	IsActive bool   `json:"is_active"`
}

type teamsResponse struct {
	Data []teamRow `json:"data"`
}

type teamRow struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
}
