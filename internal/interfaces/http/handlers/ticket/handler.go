package ticket

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC      usecases.CreateTicketExecutor
	updateTicketUC      usecases.UpdateTicketExecutor
	addCommentUC        usecases.AddCommentExecutor
	addAttachmentUC     usecases.AddAttachmentExecutor
	getTicketUC         usecases.GetTicketExecutor
	getAttachmentFileUC usecases.GetAttachmentFileExecutor
	listTicketsUC       usecases.ListTicketsExecutor
	listEventsUC        usecases.ListEventsExecutor
	logger              logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	addAttachmentUC usecases.AddAttachmentExecutor,
	getTicketUC usecases.GetTicketExecutor,
	getAttachmentFileUC usecases.GetAttachmentFileExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	listEventsUC usecases.ListEventsExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:      createTicketUC,
		updateTicketUC:      updateTicketUC,
		addCommentUC:        addCommentUC,
		addAttachmentUC:     addAttachmentUC,
		getTicketUC:         getTicketUC,
		getAttachmentFileUC: getAttachmentFileUC,
		listTicketsUC:       listTicketsUC,
		listEventsUC:        listEventsUC,
		logger:              logger.NewLogger(),
	}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	cmd := usecases.CreateTicketCommand{
		Title:     req.Title,
		Content:   req.Content,
		Requester: req.Requester,
		Priority:  req.Priority,
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Ticket, "Ticket created successfully")
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	query := usecases.ListTicketsQuery{
		Search:   c.Query("q"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Ticket)
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket",
			"ticket_id", ticketID,
			"error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID: ticketID,
		Actor:    req.Actor,
		Status:   req.Status,
		Assignee: req.Assignee,
		Priority: req.Priority,
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment",
			"ticket_id", ticketID,
			"error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketID: ticketID,
		Author:   req.Author,
		Body:     req.Body,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Comment, "Comment added successfully")
}

func (h *TicketHandler) AddAttachment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("attachment file is required", err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewStorageError("failed to read uploaded file", err.Error()))
		return
	}
	defer file.Close()

	cmd := usecases.AddAttachmentCommand{
		TicketID: ticketID,
		Actor:    c.PostForm("actor"),
		Filename: fileHeader.Filename,
		Content:  file,
		MimeType: fileHeader.Header.Get("Content-Type"),
	}

	result, err := h.addAttachmentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Attachment, "Attachment added successfully")
}

func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachmentID, err := utils.ParseUintParam(c, "attachment_id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetAttachmentFileQuery{
		TicketID:     ticketID,
		AttachmentID: attachmentID,
	}

	result, err := h.getAttachmentFileUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := os.Stat(result.File.Path); err != nil {
		h.logger.Errorw("attachment file missing from storage",
			"ticket_id", ticketID,
			"attachment_id", attachmentID,
			"error", err)
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("attachment file not found"))
		return
	}

	if result.File.MimeType != "" {
		c.Header("Content-Type", result.File.MimeType)
	}
	c.FileAttachment(result.File.Path, result.File.Filename)
}

func (h *TicketHandler) ListEvents(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listEventsUC.Execute(c.Request.Context(), usecases.ListEventsQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Events)
}
