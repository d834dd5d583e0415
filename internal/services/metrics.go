package services

import (
	"time"

	"github.com/nimasrn/clubhouse/pkg/prom"
)

const (
	entityMember      = "member"
	entityDues        = "dues"
	entityTransaction = "transaction"
	entitySponsor     = "sponsor"
	entityUser        = "user"
	entityDashboard   = "dashboard"
)

func observe(entity, operation string, start time.Time, err error) {
	prom.ObserveStoreOperation(entity, operation, outcome(err), start)
}
