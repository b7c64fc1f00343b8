package api

import (
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	repositories "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/repositories"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
	service "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/service"
)

type adminBody struct {
	Actor     string `json:"actor" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

func (body *adminBody) toAdminRequest() (service.AdminRequest, error) {
	sig, err := decodeHex(body.Signature)
	if err != nil {
		return service.AdminRequest{}, app_errors.Wrap(app_errors.CodeInvalidInput, "signature is not valid hex", err)
	}

	return service.AdminRequest{
		Actor:     body.Actor,
		Message:   []byte(body.Message),
		Signature: sig,
	}, nil
}

func decodeHex(value string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(value, "0x"))
}

func (server *Server) registerVoter(c *gin.Context) {
	var body struct {
		Address   string `json:"address" binding:"required"`
		Name      string `json:"name"`
		Message   string `json:"message" binding:"required"`
		Signature string `json:"signature" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, app_errors.Wrap(app_errors.CodeInvalidInput, "invalid request body", err))
		return
	}

	sig, err := decodeHex(body.Signature)
	if err != nil {
		abortWithError(c, app_errors.Wrap(app_errors.CodeInvalidInput, "signature is not valid hex", err))
		return
	}

	voter, err := server.voterService.Register(&service.RegisterVoterRequest{
		Address:   body.Address,
		Name:      body.Name,
		Message:   []byte(body.Message),
		Signature: sig,
	})

	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"address":       voter.Address,
		"verified":      voter.Verified,
		"registered_at": voter.RegisteredAt,
	})
}

func (server *Server) getVoterStatus(c *gin.Context) {
	status, err := server.voterService.GetVoterStatus(c.Param("address"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"registered":             status.Registered,
		"verified":               status.Verified,
		"has_voted_per_election": status.HasVotedPerElection,
	})
}

func (server *Server) castVote(c *gin.Context) {
	var body struct {
		ElectionId   string `json:"election_id"`
		CandidateId  string `json:"candidate_id" binding:"required"`
		VoterAddress string `json:"voter_address" binding:"required"`
		Message      string `json:"message" binding:"required"`
		Signature    string `json:"signature" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, app_errors.Wrap(app_errors.CodeInvalidInput, "invalid request body", err))
		return
	}

	sig, err := decodeHex(body.Signature)
	if err != nil {
		abortWithError(c, app_errors.Wrap(app_errors.CodeInvalidInput, "signature is not valid hex", err))
		return
	}

	result, err := server.voteService.CastVote(c.Request.Context(), &service.CastVoteRequest{
		ElectionId:   body.ElectionId,
		CandidateId:  body.CandidateId,
		VoterAddress: body.VoterAddress,
		Message:      []byte(body.Message),
		Signature:    sig,
	})

	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ledger_tx_hash":      result.LedgerTxHash,
		"ledger_block_number": result.LedgerBlockNumber,
		"candidate":           candidateResponse(result.Candidate),
	})
}

func (server *Server) createElection(c *gin.Context) {
	var body struct {
		adminBody
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		StartTime   int64  `json:"start_time" binding:"required"`
		EndTime     int64  `json:"end_time" binding:"required"`
		VotingMode  string `json:"voting_mode" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, app_errors.Wrap(app_errors.CodeInvalidInput, "invalid request body", err))
		return
	}

	admin, err := body.toAdminRequest()
	if err != nil {
		abortWithError(c, err)
		return
	}

	election, err := server.electionService.CreateElection(&service.CreateElectionRequest{
		Title:       body.Title,
		Description: body.Description,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		VotingMode:  models.VotingMode(body.VotingMode),
		Admin:       admin,
	})

	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, electionResponse(election))
}

func (server *Server) getElection(c *gin.Context) {
	election, err := server.electionService.GetElection(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, electionResponse(election))
}

func (server *Server) getResults(c *gin.Context) {
	results, err := server.electionService.Results(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	candidates := make([]gin.H, len(results))
	for idx, candidate := range results {
		candidates[idx] = candidateResponse(candidate)
	}

	c.JSON(http.StatusOK, gin.H{"results": candidates})
}

func (server *Server) startElection(c *gin.Context) {
	server.electionTransition(c, server.electionService.StartElection)
}

func (server *Server) stopElection(c *gin.Context) {
	server.electionTransition(c, server.electionService.StopElection)
}

func (server *Server) pauseElection(c *gin.Context) {
	server.electionTransition(c, server.electionService.PauseElection)
}

func (server *Server) resumeElection(c *gin.Context) {
	server.electionTransition(c, server.electionService.ResumeElection)
}

func (server *Server) cancelElection(c *gin.Context) {
	server.electionTransition(c, server.electionService.CancelElection)
}

func (server *Server) electionTransition(c *gin.Context, transition func(string, service.AdminRequest) (*models.Election, error)) {
	var body adminBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, app_errors.Wrap(app_errors.CodeInvalidInput, "invalid request body", err))
		return
	}

	admin, err := body.toAdminRequest()
	if err != nil {
		abortWithError(c, err)
		return
	}

	election, err := transition(c.Param("id"), admin)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, electionResponse(election))
}

func (server *Server) registerCandidate(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		Party       string `json:"party"`
		Description string `json:"description"`
		ElectionId  string `json:"election_id" binding:"required"`
		Actor       string `json:"actor" binding:"required"`
		Message     string `json:"message" binding:"required"`
		Signature   string `json:"signature" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, app_errors.Wrap(app_errors.CodeInvalidInput, "invalid request body", err))
		return
	}

	sig, err := decodeHex(body.Signature)
	if err != nil {
		abortWithError(c, app_errors.Wrap(app_errors.CodeInvalidInput, "signature is not valid hex", err))
		return
	}

	candidate, err := server.candidateService.RegisterCandidate(&service.RegisterCandidateRequest{
		Name:        body.Name,
		Party:       body.Party,
		Description: body.Description,
		ElectionId:  body.ElectionId,
		Actor:       body.Actor,
		Message:     []byte(body.Message),
		Signature:   sig,
	})

	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, candidateResponse(candidate))
}

func (server *Server) approveCandidate(c *gin.Context) {
	server.candidateTransition(c, server.candidateService.ApproveCandidate)
}

func (server *Server) rejectCandidate(c *gin.Context) {
	server.candidateTransition(c, server.candidateService.RejectCandidate)
}

func (server *Server) candidateTransition(c *gin.Context, transition func(string, service.AdminRequest) (*models.Candidate, error)) {
	var body adminBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, app_errors.Wrap(app_errors.CodeInvalidInput, "invalid request body", err))
		return
	}

	admin, err := body.toAdminRequest()
	if err != nil {
		abortWithError(c, err)
		return
	}

	candidate, err := transition(c.Param("id"), admin)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidateResponse(candidate))
}

func (server *Server) appendAudit(c *gin.Context) {
	var body struct {
		adminBody
		Action  string `json:"action" binding:"required"`
		Payload string `json:"payload"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, app_errors.Wrap(app_errors.CodeInvalidInput, "invalid request body", err))
		return
	}

	admin, err := body.toAdminRequest()
	if err != nil {
		abortWithError(c, err)
		return
	}

	entry, err := server.auditService.Append(models.ActionKind(body.Action), admin, body.Payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, auditEntryResponse(entry))
}

func (server *Server) queryAudit(c *gin.Context) {
	filter, err := auditFilterFromQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, total, err := server.auditService.Query(filter, offset, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	responses := make([]gin.H, len(entries))
	for idx, entry := range entries {
		responses[idx] = auditEntryResponse(entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": responses,
		"total":   total,
		"offset":  offset,
		"limit":   limit,
	})
}

func (server *Server) exportAudit(c *gin.Context) {
	filter, err := auditFilterFromQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	data, err := server.auditService.Export(filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}

func auditFilterFromQuery(c *gin.Context) (*repositories.AuditFilter, error) {
	filter := &repositories.AuditFilter{}

	if action := c.Query("action"); action != "" {
		kind := models.ActionKind(action)
		filter.Action = &kind
	}

	if actor := c.Query("actor"); actor != "" {
		filter.Actor = &actor
	}

	if from := c.Query("from"); from != "" {
		value, err := strconv.ParseInt(from, 10, 64)
		if err != nil {
			return nil, app_errors.Wrap(app_errors.CodeInvalidInput, "invalid from timestamp", err)
		}
		filter.From = &value
	}

	if to := c.Query("to"); to != "" {
		value, err := strconv.ParseInt(to, 10, 64)
		if err != nil {
			return nil, app_errors.Wrap(app_errors.CodeInvalidInput, "invalid to timestamp", err)
		}
		filter.To = &value
	}

	return filter, nil
}

func electionResponse(election *models.Election) gin.H {
	candidates := make([]gin.H, len(election.Candidates))
	for idx, candidate := range election.Candidates {
		candidates[idx] = candidateResponse(candidate)
	}

	return gin.H{
		"id":                election.Id,
		"title":             election.Title,
		"description":       election.Description,
		"start_time":        election.StartTime,
		"end_time":          election.EndTime,
		"actual_start_time": election.ActualStartTime,
		"actual_end_time":   election.ActualEndTime,
		"voting_mode":       string(election.VotingMode),
		"status":            string(election.Status),
		"vote_count":        election.VoteCount,
		"candidates":        candidates,
	}
}

func candidateResponse(candidate *models.Candidate) gin.H {
	return gin.H{
		"id":                   candidate.Id,
		"name":                 candidate.Name,
		"party":                candidate.Party,
		"election_id":          candidate.ElectionId,
		"status":               string(candidate.Status),
		"vote_count":           candidate.VoteCount,
		"delegated_vote_count": candidate.DelegatedVoteCount,
	}
}

func auditEntryResponse(entry *models.AuditEntry) gin.H {
	return gin.H{
		"id":                  hex.EncodeToString(entry.Id),
		"action":              string(entry.Action),
		"actor":               entry.Actor,
		"payload":             entry.Payload,
		"timestamp":           entry.Timestamp,
		"ledger_tx_hash":      entry.LedgerTxHash,
		"ledger_block_number": entry.LedgerBlockNumber,
	}
}
