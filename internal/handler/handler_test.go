package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/roster/api/internal/middleware"
	"github.com/forgo/roster/api/internal/model"
	"github.com/forgo/roster/api/internal/service"
	"github.com/forgo/roster/api/internal/testing/fixtures"
	"github.com/forgo/roster/api/internal/testing/testdb"
)

var testAuth = middleware.AuthConfig{
	Secret:   []byte("test-secret"),
	Issuer:   "roster-api",
	Audience: "roster",
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestServer(t *testing.T) *http.ServeMux {
	t.Helper()
	mux, _ := newTestServerWithStores(t)
	return mux
}

func newTestServerWithStores(t *testing.T) (*http.ServeMux, *testdb.Stores) {
	t.Helper()

	stores := testdb.New()

	personService := service.NewPersonService(service.PersonServiceConfig{
		PersonStore:     stores.People,
		MembershipStore: stores.Memberships,
	})
	groupService := service.NewGroupService(service.GroupServiceConfig{
		GroupStore:      stores.Groups,
		MembershipStore: stores.Memberships,
	})
	administratorService := service.NewAdministratorService(service.AdministratorServiceConfig{
		AdministratorStore: stores.Administrators,
	})
	membershipService := service.NewMembershipService(service.MembershipServiceConfig{
		PersonStore:     stores.People,
		GroupStore:      stores.Groups,
		MembershipStore: stores.Memberships,
	})

	translator := NewTranslator("test", slog.Default())

	mux := NewRouter(RouterConfig{
		PersonHandler: NewPersonHandler(PersonHandlerConfig{
			PersonService:     personService,
			MembershipService: membershipService,
			Translator:        translator,
		}),
		GroupHandler: NewGroupHandler(GroupHandlerConfig{
			GroupService:      groupService,
			MembershipService: membershipService,
			Translator:        translator,
		}),
		AdministratorHandler: NewAdministratorHandler(AdministratorHandlerConfig{
			AdministratorService: administratorService,
			Translator:           translator,
		}),
		HealthHandler: NewHealthHandler(okPinger{}, translator),
		Translator:    translator,
		Auth:          middleware.Auth(testAuth, translator),
	})
	return mux, stores
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func bearer(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "auth0|tester",
		Issuer:    testAuth.Issuer,
		Audience:  jwt.ClaimStrings{testAuth.Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(testAuth.Secret)
	require.NoError(t, err)
	return "Bearer " + signed
}

func createPerson(t *testing.T, mux *http.ServeMux, name string) model.Person {
	t.Helper()
	rec := doJSON(t, mux, http.MethodPost, "/api/people", `{"name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[model.Person](t, rec)
}

func createGroup(t *testing.T, mux *http.ServeMux, name string) model.Group {
	t.Helper()
	rec := doJSON(t, mux, http.MethodPost, "/api/groups",
		`{"name":"`+name+`","description":"a test group"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[model.Group](t, rec)
}

func TestPeople_CreateAndFetch(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/people",
		`{"name":"  Ada Lovelace  ","email":"ada@example.com","birthdate":"1815-12-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeBody[model.Person](t, rec)
	assert.Equal(t, "Ada Lovelace", created.Name, "name is trimmed before storage")
	require.NotZero(t, created.ID)

	rec = doJSON(t, mux, http.MethodGet, "/api/people/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeBody[model.Person](t, rec)
	assert.Equal(t, created.ID, fetched.ID)
	require.NotNil(t, fetched.Email)
	assert.Equal(t, "ada@example.com", *fetched.Email)
}

func TestPeople_ValidationEnvelope(t *testing.T) {
	mux := newTestServer(t)

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	rec := doJSON(t, mux, http.MethodPost, "/api/people",
		`{"name":"Ada","birthdate":"`+future+`"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Type)
	assert.Equal(t, "Validation failed, check details for more information", envelope.Message)
	require.Contains(t, envelope.Details, "body")

	body, ok := envelope.Details["body"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, body, "birthdate")
}

func TestPeople_UnknownBodyKeyRejected(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/people",
		`{"name":"Ada","nickname":"countess"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Type)
}

func TestPeople_UpdatePartial(t *testing.T) {
	mux := newTestServer(t)
	person := createPerson(t, mux, "Ada")

	rec := doJSON(t, mux, http.MethodPut, "/api/people/1", `{"bio":"wrote the first program"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decodeBody[model.Person](t, rec)
	assert.Equal(t, person.ID, updated.ID)
	assert.Equal(t, "Ada", updated.Name)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "wrote the first program", *updated.Bio)
}

func TestPeople_GetMissing(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/people/42", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Equal(t, "NOT_FOUND", envelope.Type)
	assert.Equal(t, "There is no person with id 42", envelope.Message)
	assert.NotNil(t, envelope.Details)
}

func TestPeople_NonNumericIDRejected(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/people/abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Type)
	assert.Contains(t, envelope.Details, "params")
}

func TestPeople_ListAndCountSeeded(t *testing.T) {
	mux, stores := newTestServerWithStores(t)
	f := fixtures.New(stores)

	ada := f.CreatePerson(t, fixtures.PersonOpts{Name: "Ada"})
	f.CreatePerson(t)
	f.CreatePerson(t)
	chess := f.CreateGroup(t, fixtures.GroupOpts{Name: "Chess Club"})
	f.AddMember(t, ada, chess)

	rec := doJSON(t, mux, http.MethodGet, "/api/people", "")
	require.Equal(t, http.StatusOK, rec.Code)
	people := decodeBody[[]model.Person](t, rec)
	require.Len(t, people, 3)
	assert.Equal(t, "Ada", people[0].Name)

	rec = doJSON(t, mux, http.MethodGet, "/api/people/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	count := decodeBody[CountResponse](t, rec)
	assert.Equal(t, int64(3), count.Count)

	rec = doJSON(t, mux, http.MethodGet, "/api/groups/1/members", "")
	require.Equal(t, http.StatusOK, rec.Code)
	members := decodeBody[[]model.Person](t, rec)
	require.Len(t, members, 1)
	assert.Equal(t, "Ada", members[0].Name)
}

func TestMemberships_JoinLifecycle(t *testing.T) {
	mux := newTestServer(t)
	person := createPerson(t, mux, "Ada")
	group := createGroup(t, mux, "Chess Club")

	// join via the people side
	rec := doJSON(t, mux, http.MethodPost, "/api/people/1/groups", `{"groupId":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	membership := decodeBody[model.Membership](t, rec)
	assert.Equal(t, person.ID, membership.PersonID)
	assert.Equal(t, group.ID, membership.GroupID)

	// duplicate join via the groups side conflicts
	rec = doJSON(t, mux, http.MethodPost, "/api/groups/1/members", `{"personId":1}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Equal(t, "CONFLICT", envelope.Type)

	// member list shows the person
	rec = doJSON(t, mux, http.MethodGet, "/api/groups/1/members", "")
	require.Equal(t, http.StatusOK, rec.Code)
	members := decodeBody[[]model.Person](t, rec)
	require.Len(t, members, 1)
	assert.Equal(t, "Ada", members[0].Name)

	// leave, then the pair is free again
	rec = doJSON(t, mux, http.MethodDelete, "/api/people/1/groups/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, mux, http.MethodPost, "/api/people/1/groups", `{"groupId":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestMemberships_JoinMissingGroup(t *testing.T) {
	mux := newTestServer(t)
	createPerson(t, mux, "Ada")

	rec := doJSON(t, mux, http.MethodPost, "/api/people/1/groups", `{"groupId":9}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Equal(t, "There is no group with id 9", envelope.Message)
}

func TestMemberships_AddMemberMissingPerson(t *testing.T) {
	mux := newTestServer(t)
	createGroup(t, mux, "Chess Club")

	rec := doJSON(t, mux, http.MethodPost, "/api/groups/1/members", `{"personId":9}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Equal(t, "There is no person with id 9", envelope.Message)
}

func TestPeople_DeleteCascades(t *testing.T) {
	mux := newTestServer(t)
	createPerson(t, mux, "Ada")
	createGroup(t, mux, "Chess Club")

	rec := doJSON(t, mux, http.MethodPost, "/api/people/1/groups", `{"groupId":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, mux, http.MethodDelete, "/api/people/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	// person and membership are gone; the group remains
	rec = doJSON(t, mux, http.MethodGet, "/api/people/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, mux, http.MethodGet, "/api/groups/1/members", "")
	require.Equal(t, http.StatusOK, rec.Code)
	members := decodeBody[[]model.Person](t, rec)
	assert.Empty(t, members)
}

func TestPeople_DeleteAllIsIdempotent(t *testing.T) {
	mux := newTestServer(t)
	createPerson(t, mux, "Ada")

	rec := doJSON(t, mux, http.MethodDelete, "/api/people", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, mux, http.MethodDelete, "/api/people", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, mux, http.MethodGet, "/api/people/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	count := decodeBody[CountResponse](t, rec)
	assert.Equal(t, int64(0), count.Count)
}

func TestAdministrators_RequireAuth(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/administrators", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Equal(t, "UNAUTHORIZED", envelope.Type)
}

func TestAdministrators_CRUD(t *testing.T) {
	mux := newTestServer(t)
	auth := bearer(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/administrators",
		`{"auth0id":"auth0|1","username":"root","email":"root@example.com"}`,
		"Authorization", auth)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// duplicate auth0id conflicts with the combined message
	rec = doJSON(t, mux, http.MethodPost, "/api/administrators",
		`{"auth0id":"auth0|1","username":"other","email":"o@example.com"}`,
		"Authorization", auth)
	require.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Equal(t, "An administrator with auth0id auth0|1 and/or username other already exists", envelope.Message)

	rec = doJSON(t, mux, http.MethodGet, "/api/administrators/auth0|1", "", "Authorization", auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	admin := decodeBody[model.Administrator](t, rec)
	assert.Equal(t, "root", admin.Username)

	rec = doJSON(t, mux, http.MethodPut, "/api/administrators/auth0|1",
		`{"email":"new@example.com"}`, "Authorization", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[model.Administrator](t, rec)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "root", updated.Username)

	rec = doJSON(t, mux, http.MethodDelete, "/api/administrators/auth0|1", "", "Authorization", auth)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, mux, http.MethodGet, "/api/administrators/auth0|1", "", "Authorization", auth)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownResourceEnvelope(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/nothing-here", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Equal(t, "NOT_FOUND", envelope.Type)
	assert.Equal(t, "Unknown resource: /api/nothing-here", envelope.Message)
}

func TestHealth(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestTranslator_StackOnlyOutsideProduction(t *testing.T) {
	dev := NewTranslator("development", slog.Default())
	prod := NewTranslator("production", slog.Default())
	req := httptest.NewRequest(http.MethodGet, "/api/people", nil)

	rec := httptest.NewRecorder()
	dev.WriteError(rec, req, model.NewInternal("boom"))
	devEnvelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.NotEmpty(t, devEnvelope.Stack)

	rec = httptest.NewRecorder()
	prod.WriteError(rec, req, model.NewInternal("boom"))
	prodEnvelope := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Empty(t, prodEnvelope.Stack)

	// stack never rides on non-internal kinds
	rec = httptest.NewRecorder()
	dev.WriteError(rec, req, model.NewNotFound("nope"))
	notFound := decodeBody[model.ErrorEnvelope](t, rec)
	assert.Empty(t, notFound.Stack)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
