package model

// TeamMember описывает участника команды и признак лидерства.
type TeamMember struct {
	Username string `json:"username"`
	IsLeader bool   `json:"is_leader"`
}

// Team описывает команду, её вступление и список участников.
type Team struct {
	TeamName     string       `json:"team_name"`
	Introduction string       `json:"introduction"`
	Members      []TeamMember `json:"members"`
}

// HasMember сообщает, состоит ли пользователь в команде.
func (t Team) HasMember(username string) bool {
	for _, m := range t.Members {
		if m.Username == username {
			return true
		}
	}
	return false
}
