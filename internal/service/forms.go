package service

import "tier-dashboard/internal/ui"

// ChoosePostTeam отмечает команду, выбранную в выпадающем списке публикации.
func (d *Dispatcher) ChoosePostTeam(team string) {
	d.page.Label(ui.PostTargetTeam).Set(team)
}

// ChooseMeetingTeam отмечает команду, выбранную для встречи.
func (d *Dispatcher) ChooseMeetingTeam(team string) {
	d.page.Label(ui.MeetingTargetTeam).Set(team)
}

// ChooseAssignTeam отмечает команду для задачи и сбрасывает выбранного исполнителя.
func (d *Dispatcher) ChooseAssignTeam(team string) {
	d.page.Label(ui.AssignTargetTeam).Set(team)
	d.page.Label(ui.AssignTargetMember).Set(ui.NoneLabel)
}

// ChooseAssignMember отмечает исполнителя задачи.
func (d *Dispatcher) ChooseAssignMember(member string) {
	d.page.Label(ui.AssignTargetMember).Set(member)
}

// ClearNewsForm сбрасывает форму публикации.
func (d *Dispatcher) ClearNewsForm() {
	d.page.Label(ui.PostTargetTeam).Set(ui.NoneLabel)
	d.page.Field(ui.MsgContent).Set("")
}

// ClearMeetingForm сбрасывает форму встречи.
func (d *Dispatcher) ClearMeetingForm() {
	d.page.Label(ui.MeetingTargetTeam).Set(ui.NoneLabel)
	d.page.Field(ui.MeetingContent).Set("")
	d.page.Field(ui.MeetingTime).Set("")
}

// ClearAssignmentForm сбрасывает форму задачи.
func (d *Dispatcher) ClearAssignmentForm() {
	d.page.Label(ui.AssignTargetTeam).Set(ui.NoneLabel)
	d.page.Label(ui.AssignTargetMember).Set(ui.NoneLabel)
	d.page.Field(ui.AssignContent).Set("")
	d.page.Field(ui.AssignDeadline).Set("")
}

// ClearTeamForm сбрасывает форму создания команды.
func (d *Dispatcher) ClearTeamForm() {
	d.page.Field(ui.TeamCreateName).Set("")
	d.page.Field(ui.TeamCreateIntro).Set("")
}
