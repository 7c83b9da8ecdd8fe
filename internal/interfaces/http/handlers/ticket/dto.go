package ticket

type CreateTicketRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	Content   string `json:"content"`
	Requester string `json:"requester" binding:"required"`
	Priority  string `json:"priority" binding:"omitempty,oneof=low med high crit"`
}

// UpdateTicketRequest carries partial updates. Absent fields are left
// untouched; an explicit empty assignee clears the assignment.
type UpdateTicketRequest struct {
	Actor    string  `json:"actor"`
	Status   *string `json:"status" binding:"omitempty,oneof=open prog hold done"`
	Assignee *string `json:"assignee"`
	Priority *string `json:"priority" binding:"omitempty,oneof=low med high crit"`
}

type AddCommentRequest struct {
	Author string `json:"author"`
	Body   string `json:"body" binding:"required"`
}
