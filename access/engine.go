// Package access centralizes authorization decisions for every resource
// operation. Handlers and services call Decide instead of performing
// ad-hoc permission checks, so the rules are testable in isolation from
// HTTP and database concerns.
package access

import (
	"github.com/archidesk/apperrors"
	"github.com/archidesk/models"
)

// Caller is the identity resolved from a request's bearer token.
type Caller struct {
	ID   string
	Role models.Role
}

// Operation tags every permission-checked action in the system.
type Operation string

const (
	UserAddArchitect   Operation = "user:add_architect"
	UserListArchitects Operation = "user:list_architects"
	UserAddClient      Operation = "user:add_client"

	ProjectCreate Operation = "project:create"
	ProjectRead   Operation = "project:read"
	ProjectUpdate Operation = "project:update"
	ProjectDelete Operation = "project:delete"

	MeetingCreate         Operation = "meeting:create"
	MeetingRead           Operation = "meeting:read"
	MeetingUpdate         Operation = "meeting:update"
	MeetingDelete         Operation = "meeting:delete"
	MeetingAddParticipant Operation = "meeting:add_participant"

	DocumentCreate Operation = "document:create"
	DocumentRead   Operation = "document:read"
	DocumentUpdate Operation = "document:update"
	DocumentDelete Operation = "document:delete"
)

// Reason is the typed cause carried by a deny decision.
type Reason string

const (
	ReasonNotAuthenticated Reason = "not_authenticated"
	ReasonForbidden        Reason = "forbidden"
	ReasonNotFound         Reason = "not_found"
)

// Decision is the outcome of a single authorization check.
type Decision struct {
	Allowed bool
	Reason  Reason
	Message string
}

// Err maps a deny decision to the error taxonomy. Returns nil when the
// decision allows the operation.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case ReasonNotAuthenticated:
		return apperrors.Unauthenticated(d.Message)
	case ReasonNotFound:
		return apperrors.NotFound(d.Message)
	default:
		return apperrors.Forbidden(d.Message)
	}
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason, message string) Decision {
	return Decision{Reason: reason, Message: message}
}

// Resource is the target of an operation. Exactly one field is set for
// resource-scoped operations; create operations that derive their
// authorization from an existing project carry that project. Identity
// operations carry no resource at all.
type Resource struct {
	Project  *models.Project
	Meeting  *models.Meeting
	Document *models.Document
}

// NoResource is the target for identity-scoped and project-create operations.
func NoResource() Resource {
	return Resource{}
}

// ProjectResource targets an operation at a project. Also used for
// meeting/document creation, where authorization derives from the
// referenced project because the new resource does not exist yet.
func ProjectResource(p *models.Project) Resource {
	return Resource{Project: p}
}

// MeetingResource targets an operation at a meeting. The participant
// list must be populated for read checks.
func MeetingResource(m *models.Meeting) Resource {
	return Resource{Meeting: m}
}

// DocumentResource targets an operation at a document. The document's
// Project association must be populated for read checks.
func DocumentResource(d *models.Document) Resource {
	return Resource{Document: d}
}

// rule holds the role/ownership check applied to non-admin callers.
type rule struct {
	check func(caller Caller, res Resource) Decision
}

// Engine evaluates the rule table. It holds no state; a single instance
// is shared across all handlers.
type Engine struct {
	rules map[Operation]rule
}

// NewEngine builds the engine with the full rule table.
func NewEngine() *Engine {
	return &Engine{rules: ruleTable()}
}

// Decide returns whether caller may perform op against res.
//
// Precedence: an unauthenticated caller is always denied; an admin is
// allowed for every operation; otherwise the per-operation rule applies.
func (e *Engine) Decide(caller Caller, op Operation, res Resource) Decision {
	if caller.ID == "" {
		return deny(ReasonNotAuthenticated, "authentication required")
	}

	r, ok := e.rules[op]
	if !ok {
		return deny(ReasonForbidden, "unknown operation")
	}

	// Existence is checked before any role logic so missing resources
	// surface as not-found for every caller, admin included.
	if d := checkExists(op, res); !d.Allowed {
		return d
	}

	if caller.Role == models.RoleAdmin {
		return allow()
	}

	return r.check(caller, res)
}

// checkExists denies with a not-found reason when a resource-scoped
// operation targets a missing resource.
func checkExists(op Operation, res Resource) Decision {
	switch op {
	case ProjectRead, ProjectUpdate, ProjectDelete, MeetingCreate, DocumentCreate:
		if res.Project == nil {
			return deny(ReasonNotFound, "project not found")
		}
	case MeetingRead, MeetingUpdate, MeetingDelete, MeetingAddParticipant:
		if res.Meeting == nil {
			return deny(ReasonNotFound, "meeting not found")
		}
	case DocumentRead, DocumentUpdate, DocumentDelete:
		if res.Document == nil {
			return deny(ReasonNotFound, "document not found")
		}
	}
	return allow()
}

func ruleTable() map[Operation]rule {
	return map[Operation]rule{
		// Identity management. Non-admin callers never reach these two.
		UserAddArchitect: {check: func(c Caller, _ Resource) Decision {
			return deny(ReasonForbidden, "only admins can create architect accounts")
		}},
		UserListArchitects: {check: func(c Caller, _ Resource) Decision {
			return deny(ReasonForbidden, "only admins can list architects")
		}},
		UserAddClient: {check: func(c Caller, _ Resource) Decision {
			if c.Role == models.RoleArchitect {
				return allow()
			}
			return deny(ReasonForbidden, "only architects can create client accounts")
		}},

		ProjectCreate: {check: func(c Caller, _ Resource) Decision {
			if c.Role == models.RoleArchitect {
				return allow()
			}
			return deny(ReasonForbidden, "only admins and architects can create projects")
		}},
		ProjectRead: {check: func(c Caller, res Resource) Decision {
			if res.Project.ArchitectID == c.ID || res.Project.ClientID == c.ID {
				return allow()
			}
			return deny(ReasonForbidden, "not authorized to view this project")
		}},
		ProjectUpdate: {check: func(c Caller, res Resource) Decision {
			if res.Project.ArchitectID == c.ID {
				return allow()
			}
			return deny(ReasonForbidden, "only the project's architect can update it")
		}},
		ProjectDelete: {check: func(c Caller, res Resource) Decision {
			if res.Project.ArchitectID == c.ID {
				return allow()
			}
			return deny(ReasonForbidden, "only the project's architect can delete it")
		}},

		// Meeting creation derives authorization from the referenced
		// project; the meeting itself does not exist yet.
		MeetingCreate: {check: func(c Caller, res Resource) Decision {
			if res.Project.ArchitectID == c.ID || res.Project.ClientID == c.ID {
				return allow()
			}
			return deny(ReasonForbidden, "not authorized to create meetings for this project")
		}},
		MeetingRead: {check: func(c Caller, res Resource) Decision {
			if res.Meeting.HasParticipant(c.ID) {
				return allow()
			}
			return deny(ReasonForbidden, "not authorized to view this meeting")
		}},
		MeetingUpdate: {check: func(c Caller, res Resource) Decision {
			if res.Meeting.CreatorID == c.ID {
				return allow()
			}
			return deny(ReasonForbidden, "only the meeting's creator can update it")
		}},
		MeetingDelete: {check: func(c Caller, res Resource) Decision {
			if res.Meeting.CreatorID == c.ID {
				return allow()
			}
			return deny(ReasonForbidden, "only the meeting's creator can delete it")
		}},
		MeetingAddParticipant: {check: func(c Caller, res Resource) Decision {
			if res.Meeting.CreatorID == c.ID {
				return allow()
			}
			return deny(ReasonForbidden, "only the meeting's creator can add participants")
		}},

		DocumentCreate: {check: func(c Caller, res Resource) Decision {
			if res.Project.ArchitectID == c.ID || res.Project.ClientID == c.ID {
				return allow()
			}
			return deny(ReasonForbidden, "not authorized to upload documents for this project")
		}},
		DocumentRead: {check: func(c Caller, res Resource) Decision {
			if res.Document.IsPublic {
				return allow()
			}
			if res.Document.Project.ArchitectID == c.ID || res.Document.Project.ClientID == c.ID {
				return allow()
			}
			return deny(ReasonForbidden, "not authorized to view this document")
		}},
		DocumentUpdate: {check: func(c Caller, res Resource) Decision {
			if res.Document.UploadedByID == c.ID {
				return allow()
			}
			return deny(ReasonForbidden, "only the document's uploader can update it")
		}},
		DocumentDelete: {check: func(c Caller, res Resource) Decision {
			if res.Document.UploadedByID == c.ID {
				return allow()
			}
			return deny(ReasonForbidden, "only the document's uploader can delete it")
		}},
	}
}
