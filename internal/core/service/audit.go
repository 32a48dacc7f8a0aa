package service

import (
	"time"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

func recordAudit(rec ports.AuditRecorder, actor ports.Actor, action, resource, id string) {
	if rec == nil {
		return
	}
	rec.Record(domain.AuditEntry{
		ActorID:       actor.ID,
		ActorUsername: actor.Username,
		Action:        action,
		Resource:      resource,
		ResourceID:    id,
		At:            time.Now().UTC(),
	})
}
