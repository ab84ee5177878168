package v1

import (
	fince_uuid "github.com/CarlosRW/Fince-AI-Budget/internal/uuid"
)

type URIID struct {
	ID fince_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
