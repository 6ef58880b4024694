package handler

import (
	"time"

	cleanupdomain "band-practice-go/internal/domain/cleanup"
	membersdomain "band-practice-go/internal/domain/members"
	practicesdomain "band-practice-go/internal/domain/practices"
	"band-practice-go/pkg/logger"
)

type Handlers struct {
	Members   *membersdomain.Service
	Practices *practicesdomain.Service
	Cleanup   *cleanupdomain.Service
	loc       *time.Location
	log       logger.Logger
}

func New(members *membersdomain.Service, practices *practicesdomain.Service, cleanup *cleanupdomain.Service, loc *time.Location, log logger.Logger) *Handlers {
	if loc == nil {
		loc = time.Local
	}
	return &Handlers{
		Members:   members,
		Practices: practices,
		Cleanup:   cleanup,
		loc:       loc,
		log:       log,
	}
}
