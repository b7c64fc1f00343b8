package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	ratelimit "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/ratelimit"
	service "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/service"
)

type Server struct {
	engine           *gin.Engine
	voteService      *service.VoteService
	voterService     *service.VoterService
	electionService  *service.ElectionService
	candidateService *service.CandidateService
	auditService     *service.AuditService
}

func NewServer(voteService *service.VoteService, voterService *service.VoterService, electionService *service.ElectionService, candidateService *service.CandidateService, auditService *service.AuditService, limiter *ratelimit.Limiter) *Server {
	server := &Server{
		engine:           gin.New(),
		voteService:      voteService,
		voterService:     voterService,
		electionService:  electionService,
		candidateService: candidateService,
		auditService:     auditService,
	}

	server.engine.Use(gin.Recovery())
	server.engine.Use(RateLimitMiddleware(limiter))

	api := server.engine.Group("/api")
	{
		api.POST("/voters", server.registerVoter)
		api.GET("/voters/:address/status", server.getVoterStatus)

		api.POST("/votes", server.castVote)

		api.POST("/elections", server.createElection)
		api.GET("/elections/:id", server.getElection)
		api.GET("/elections/:id/results", server.getResults)
		api.POST("/elections/:id/start", server.startElection)
		api.POST("/elections/:id/stop", server.stopElection)
		api.POST("/elections/:id/pause", server.pauseElection)
		api.POST("/elections/:id/resume", server.resumeElection)
		api.POST("/elections/:id/cancel", server.cancelElection)

		api.POST("/candidates", server.registerCandidate)
		api.POST("/candidates/:id/approve", server.approveCandidate)
		api.POST("/candidates/:id/reject", server.rejectCandidate)

		api.POST("/audit", server.appendAudit)
		api.GET("/audit", server.queryAudit)
		api.GET("/audit/export", server.exportAudit)
	}

	return server
}

func (server *Server) Engine() *gin.Engine {
	return server.engine
}

func (server *Server) Run(port uint16) error {
	return server.engine.Run(fmt.Sprintf(":%d", port))
}
