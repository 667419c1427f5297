package handlers

import (
	userRepo "mentorhub/database/repository/user"
	"mentorhub/services/community"
	"mentorhub/services/mentor"
	"mentorhub/services/scheduling"
	"mentorhub/services/user"
)

// HandlerBundle groups all HTTP handlers with their service dependencies.
type HandlerBundle struct {
	UserSvc      user.UserService
	MentorSvc    mentor.MentorService
	CommunitySvc community.CommunityService
	Engine       scheduling.SchedulingEngine
	UserRepo     userRepo.UserRepository
}

func NewHandlerBundle(
	userSvc user.UserService,
	mentorSvc mentor.MentorService,
	communitySvc community.CommunityService,
	engine scheduling.SchedulingEngine,
	users userRepo.UserRepository,
) *HandlerBundle {
	return &HandlerBundle{
		UserSvc:      userSvc,
		MentorSvc:    mentorSvc,
		CommunitySvc: communitySvc,
		Engine:       engine,
		UserRepo:     users,
	}
}
