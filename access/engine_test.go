package access

import (
	"testing"

	"github.com/archidesk/apperrors"
	"github.com/archidesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin      = Caller{ID: "admin-1", Role: models.RoleAdmin}
	architectA = Caller{ID: "arch-a", Role: models.RoleArchitect}
	architectB = Caller{ID: "arch-b", Role: models.RoleArchitect}
	clientC    = Caller{ID: "client-c", Role: models.RoleClient}
	clientD    = Caller{ID: "client-d", Role: models.RoleClient}
	nobody     = Caller{}
)

func testProject() *models.Project {
	return &models.Project{
		ID:          "proj-1",
		ArchitectID: architectA.ID,
		ClientID:    clientC.ID,
	}
}

func testMeeting() *models.Meeting {
	return &models.Meeting{
		ID:        "meet-1",
		ProjectID: "proj-1",
		CreatorID: architectA.ID,
		Participants: []models.User{
			{ID: architectA.ID},
			{ID: clientC.ID},
		},
	}
}

func testDocument(isPublic bool) *models.Document {
	return &models.Document{
		ID:           "doc-1",
		ProjectID:    "proj-1",
		UploadedByID: architectA.ID,
		IsPublic:     isPublic,
		Project:      *testProject(),
	}
}

func TestDecideUnauthenticated(t *testing.T) {
	engine := NewEngine()

	d := engine.Decide(nobody, ProjectRead, ProjectResource(testProject()))
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotAuthenticated, d.Reason)
	assert.Equal(t, apperrors.KindUnauthenticated, apperrors.KindOf(d.Err()))
}

func TestDecideMissingResource(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name string
		op   Operation
		res  Resource
	}{
		{"project read", ProjectRead, ProjectResource(nil)},
		{"meeting create on missing project", MeetingCreate, ProjectResource(nil)},
		{"meeting update", MeetingUpdate, MeetingResource(nil)},
		{"document delete", DocumentDelete, DocumentResource(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := engine.Decide(architectA, tt.op, tt.res)
			assert.False(t, d.Allowed)
			assert.Equal(t, ReasonNotFound, d.Reason)
			assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(d.Err()))
		})
	}

	// Missing resources stay missing for admins too.
	d := engine.Decide(admin, ProjectRead, ProjectResource(nil))
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotFound, d.Reason)
}

func TestAdminOverridesEverything(t *testing.T) {
	engine := NewEngine()

	ops := []struct {
		op  Operation
		res Resource
	}{
		{UserAddArchitect, NoResource()},
		{UserListArchitects, NoResource()},
		{UserAddClient, NoResource()},
		{ProjectCreate, NoResource()},
		{ProjectRead, ProjectResource(testProject())},
		{ProjectUpdate, ProjectResource(testProject())},
		{ProjectDelete, ProjectResource(testProject())},
		{MeetingCreate, ProjectResource(testProject())},
		{MeetingRead, MeetingResource(testMeeting())},
		{MeetingUpdate, MeetingResource(testMeeting())},
		{MeetingDelete, MeetingResource(testMeeting())},
		{MeetingAddParticipant, MeetingResource(testMeeting())},
		{DocumentCreate, ProjectResource(testProject())},
		{DocumentRead, DocumentResource(testDocument(false))},
		{DocumentUpdate, DocumentResource(testDocument(false))},
		{DocumentDelete, DocumentResource(testDocument(false))},
	}
	for _, tt := range ops {
		d := engine.Decide(admin, tt.op, tt.res)
		assert.True(t, d.Allowed, "admin should be allowed for %s", tt.op)
	}
}

func TestIdentityOperations(t *testing.T) {
	engine := NewEngine()

	assert.False(t, engine.Decide(architectA, UserAddArchitect, NoResource()).Allowed)
	assert.False(t, engine.Decide(clientC, UserAddArchitect, NoResource()).Allowed)
	assert.False(t, engine.Decide(architectA, UserListArchitects, NoResource()).Allowed)

	assert.True(t, engine.Decide(architectA, UserAddClient, NoResource()).Allowed)
	assert.False(t, engine.Decide(clientC, UserAddClient, NoResource()).Allowed)
}

func TestProjectRules(t *testing.T) {
	engine := NewEngine()
	project := testProject()

	t.Run("create", func(t *testing.T) {
		assert.True(t, engine.Decide(architectA, ProjectCreate, NoResource()).Allowed)
		assert.False(t, engine.Decide(clientC, ProjectCreate, NoResource()).Allowed)
	})

	t.Run("read", func(t *testing.T) {
		assert.True(t, engine.Decide(architectA, ProjectRead, ProjectResource(project)).Allowed)
		assert.True(t, engine.Decide(clientC, ProjectRead, ProjectResource(project)).Allowed)
		assert.False(t, engine.Decide(clientD, ProjectRead, ProjectResource(project)).Allowed)
		assert.False(t, engine.Decide(architectB, ProjectRead, ProjectResource(project)).Allowed)
	})

	t.Run("mutation is architect-only", func(t *testing.T) {
		assert.True(t, engine.Decide(architectA, ProjectUpdate, ProjectResource(project)).Allowed)
		assert.True(t, engine.Decide(architectA, ProjectDelete, ProjectResource(project)).Allowed)

		// The project's own client can read but never mutate.
		d := engine.Decide(clientC, ProjectUpdate, ProjectResource(project))
		assert.False(t, d.Allowed)
		assert.Equal(t, ReasonForbidden, d.Reason)
		assert.False(t, engine.Decide(clientC, ProjectDelete, ProjectResource(project)).Allowed)

		// Being an architect elsewhere grants nothing here.
		assert.False(t, engine.Decide(architectB, ProjectUpdate, ProjectResource(project)).Allowed)
		assert.False(t, engine.Decide(architectB, ProjectDelete, ProjectResource(project)).Allowed)
	})
}

func TestMeetingRules(t *testing.T) {
	engine := NewEngine()
	meeting := testMeeting()

	t.Run("create derives from project", func(t *testing.T) {
		project := testProject()
		assert.True(t, engine.Decide(architectA, MeetingCreate, ProjectResource(project)).Allowed)
		assert.True(t, engine.Decide(clientC, MeetingCreate, ProjectResource(project)).Allowed)
		assert.False(t, engine.Decide(clientD, MeetingCreate, ProjectResource(project)).Allowed)
	})

	t.Run("read requires participation", func(t *testing.T) {
		assert.True(t, engine.Decide(clientC, MeetingRead, MeetingResource(meeting)).Allowed)
		assert.False(t, engine.Decide(clientD, MeetingRead, MeetingResource(meeting)).Allowed)
		assert.False(t, engine.Decide(architectB, MeetingRead, MeetingResource(meeting)).Allowed)
	})

	t.Run("mutation requires creator", func(t *testing.T) {
		assert.True(t, engine.Decide(architectA, MeetingUpdate, MeetingResource(meeting)).Allowed)
		assert.True(t, engine.Decide(architectA, MeetingDelete, MeetingResource(meeting)).Allowed)
		assert.True(t, engine.Decide(architectA, MeetingAddParticipant, MeetingResource(meeting)).Allowed)

		// A participant who is not the creator cannot mutate.
		assert.False(t, engine.Decide(clientC, MeetingUpdate, MeetingResource(meeting)).Allowed)
		assert.False(t, engine.Decide(clientC, MeetingDelete, MeetingResource(meeting)).Allowed)
		assert.False(t, engine.Decide(clientC, MeetingAddParticipant, MeetingResource(meeting)).Allowed)
	})
}

func TestDocumentRules(t *testing.T) {
	engine := NewEngine()

	t.Run("create derives from project", func(t *testing.T) {
		project := testProject()
		assert.True(t, engine.Decide(architectA, DocumentCreate, ProjectResource(project)).Allowed)
		assert.True(t, engine.Decide(clientC, DocumentCreate, ProjectResource(project)).Allowed)
		assert.False(t, engine.Decide(clientD, DocumentCreate, ProjectResource(project)).Allowed)
	})

	t.Run("public documents are readable by anyone", func(t *testing.T) {
		public := testDocument(true)
		assert.True(t, engine.Decide(clientD, DocumentRead, DocumentResource(public)).Allowed)
		assert.True(t, engine.Decide(architectB, DocumentRead, DocumentResource(public)).Allowed)
	})

	t.Run("private documents are project-scoped", func(t *testing.T) {
		private := testDocument(false)
		assert.True(t, engine.Decide(architectA, DocumentRead, DocumentResource(private)).Allowed)
		assert.True(t, engine.Decide(clientC, DocumentRead, DocumentResource(private)).Allowed)

		d := engine.Decide(clientD, DocumentRead, DocumentResource(private))
		assert.False(t, d.Allowed)
		assert.Equal(t, ReasonForbidden, d.Reason)
	})

	t.Run("mutation requires uploader", func(t *testing.T) {
		doc := testDocument(false)
		assert.True(t, engine.Decide(architectA, DocumentUpdate, DocumentResource(doc)).Allowed)
		assert.True(t, engine.Decide(architectA, DocumentDelete, DocumentResource(doc)).Allowed)

		// The project's client can read but not touch someone else's upload.
		assert.False(t, engine.Decide(clientC, DocumentUpdate, DocumentResource(doc)).Allowed)
		assert.False(t, engine.Decide(clientC, DocumentDelete, DocumentResource(doc)).Allowed)
	})
}

func TestDecisionErr(t *testing.T) {
	require.NoError(t, allow().Err())

	err := deny(ReasonForbidden, "nope").Err()
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
	assert.Equal(t, "nope", err.Error())
}
