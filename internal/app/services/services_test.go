package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/forensicsite/internal/app/auth"
	"github.com/yigit/forensicsite/internal/app/content"
	"github.com/yigit/forensicsite/internal/app/editsession"
	"github.com/yigit/forensicsite/internal/app/models"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/app/sections"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"github.com/yigit/forensicsite/internal/pkg/auth"
	"github.com/yigit/forensicsite/internal/pkg/email"
	"github.com/yigit/forensicsite/internal/pkg/imageupload"
	"github.com/yigit/forensicsite/internal/pkg/kvstore"
	"github.com/yigit/forensicsite/internal/pkg/upstream"
	"golang.org/x/crypto/bcrypt"
)

var errDiskFull = errors.New("disk full")

// flakyStore fails writes while broken is set.
type flakyStore struct {
	*kvstore.MemoryStore
	mu     sync.Mutex
	broken bool
}

func (f *flakyStore) setBroken(b bool) {
	f.mu.Lock()
	f.broken = b
	f.mu.Unlock()
}

func (f *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	broken := f.broken
	f.mu.Unlock()
	if broken {
		return errDiskFull
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func newRegistry(t *testing.T) (*content.Registry, *flakyStore) {
	t.Helper()
	store := &flakyStore{MemoryStore: kvstore.NewMemoryStore()}
	reg := content.NewRegistry(kvstore.NewAdapter(store), "", zerolog.Nop())
	reg.LoadAll(context.Background())
	return reg, store
}

func newAuthenticator(t *testing.T, password string) *appauth.EditorAuthenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return appauth.NewEditorAuthenticator("admin", string(hash))
}

func TestPageService_ListAndGet(t *testing.T) {
	reg, _ := newRegistry(t)
	svc := NewPageService(reg, zerolog.Nop())

	realms := svc.ListRealms()
	require.Len(t, realms, 5)
	names := make([]string, 0, len(realms))
	for _, r := range realms {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, content.RealmFaculty)

	page, err := svc.GetPage(context.Background(), content.RealmFaculty)
	require.NoError(t, err)
	assert.Equal(t, "seeded", page.Status)
	assert.False(t, page.EditMode)

	_, err = svc.GetPage(context.Background(), "gallery")
	assert.ErrorIs(t, err, apperrors.ErrRealmNotFound)

	_, err = svc.GetSection(context.Background(), content.RealmFaculty, "nope")
	assert.Error(t, err)
}

func TestPageService_UpdateSection(t *testing.T) {
	ctx := context.Background()
	reg, store := newRegistry(t)
	svc := NewPageService(reg, zerolog.Nop())
	hero := json.RawMessage(`{"title":"Our people","subtitle":"","image":""}`)

	_, err := svc.UpdateSection(ctx, content.RealmFaculty, "hero", hero)
	assert.ErrorIs(t, err, apperrors.ErrNotEditing)

	reg.Faculty().SetEditMode(true)
	resp, err := svc.UpdateSection(ctx, content.RealmFaculty, "hero", hero)
	require.NoError(t, err)
	assert.True(t, resp.Persisted)
	assert.Empty(t, resp.Warning)
	assert.Equal(t, "Our people", reg.Faculty().Data().Hero.Title)

	store.setBroken(true)
	hero = json.RawMessage(`{"title":"Offline edit","subtitle":"","image":""}`)
	resp, err = svc.UpdateSection(ctx, content.RealmFaculty, "hero", hero)
	require.NoError(t, err)
	assert.False(t, resp.Persisted)
	assert.Contains(t, resp.Warning, "disk full")
	assert.Equal(t, "Offline edit", reg.Faculty().Data().Hero.Title, "the change is kept in memory")
}

func TestPageService_ResetNeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	reg, _ := newRegistry(t)
	svc := NewPageService(reg, zerolog.Nop())

	reg.Faculty().SetEditMode(true)
	_, err := svc.UpdateSection(ctx, content.RealmFaculty, "hero", json.RawMessage(`{"title":"Changed"}`))
	require.NoError(t, err)

	_, err = svc.Reset(ctx, content.RealmFaculty, false)
	assert.ErrorIs(t, err, apperrors.ErrConfirmationRequired)
	assert.Equal(t, "Changed", reg.Faculty().Data().Hero.Title)

	resp, err := svc.Reset(ctx, content.RealmFaculty, true)
	require.NoError(t, err)
	assert.True(t, resp.Reset)
	assert.True(t, resp.Persisted)
	assert.NotEqual(t, "Changed", reg.Faculty().Data().Hero.Title)
}

func TestPageService_ExportImport(t *testing.T) {
	ctx := context.Background()
	reg, _ := newRegistry(t)
	svc := NewPageService(reg, zerolog.Nop())

	_, err := svc.Import(ctx, content.RealmBlog, json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	resp, err := svc.Import(ctx, content.RealmBlog, json.RawMessage(`{"hero":{"title":"Imported"}}`))
	require.NoError(t, err)
	assert.True(t, resp.Persisted)

	doc, err := svc.Export(ctx, content.RealmBlog)
	require.NoError(t, err)
	var exported models.BlogPageData
	require.NoError(t, json.Unmarshal(doc, &exported))
	assert.Equal(t, "Imported", exported.Hero.Title)
	assert.NotEmpty(t, exported.Categories, "missing members come from the defaults")
}

func TestSectionService_ItemsAndCategories(t *testing.T) {
	ctx := context.Background()
	reg, _ := newRegistry(t)
	svc := NewSectionService(reg, sections.NewEditors(reg), zerolog.Nop())
	reg.Faculty().SetEditMode(true)

	added, err := svc.AddItem(ctx, content.RealmFaculty, "members", json.RawMessage(`{"name":"Dr. Added","category":"Visiting Faculty"}`))
	require.NoError(t, err)
	assert.True(t, added.Applied)
	var member models.FacultyMember
	require.NoError(t, json.Unmarshal(added.Item, &member))

	_, err = svc.DeleteItem(ctx, content.RealmFaculty, "members", member.ID, false)
	assert.ErrorIs(t, err, apperrors.ErrConfirmationRequired)

	deleted, err := svc.DeleteItem(ctx, content.RealmFaculty, "members", member.ID, true)
	require.NoError(t, err)
	assert.True(t, deleted.Applied)

	_, err = svc.DeleteItem(ctx, content.RealmFaculty, "members", member.ID, true)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)

	filtered, err := svc.Filtered(ctx, content.RealmFaculty, "Visiting Faculty")
	require.NoError(t, err)
	assert.Equal(t, "Visiting Faculty", filtered.ActiveFilter)

	unfiltered, err := svc.Filtered(ctx, content.RealmFaculty, "")
	require.NoError(t, err)
	assert.Equal(t, sections.FilterAll, unfiltered.ActiveFilter, "a filtered read is not remembered")

	renamed, err := svc.RenameCategory(ctx, content.RealmFaculty, "Core Faculty", "Permanent Faculty", "Core Faculty")
	require.NoError(t, err)
	assert.Equal(t, "Permanent Faculty", renamed.ActiveFilter)
	renamed, err = svc.RenameCategory(ctx, content.RealmFaculty, "Permanent Faculty", "Core Faculty", "Visiting Faculty")
	require.NoError(t, err)
	assert.Equal(t, "Visiting Faculty", renamed.ActiveFilter)

	cats, err := svc.DeleteCategory(ctx, content.RealmFaculty, "Visiting Faculty", true)
	require.NoError(t, err)
	assert.NotContains(t, cats.Categories, "Visiting Faculty")
	assert.Equal(t, sections.FilterAll, cats.ActiveFilter)

	_, err = svc.Categories(ctx, content.RealmEvents)
	assert.ErrorIs(t, err, apperrors.ErrSectionNotFound)
}

func TestEditService_SaveFlow(t *testing.T) {
	ctx := context.Background()
	reg, _ := newRegistry(t)
	recorder := &mailRecorder{}
	manager := editsession.NewManager(newAuthenticator(t, "hunter2"), editsession.ManagerConfig{
		Notifier: NewSaveMailer(recorder, "office@example.org", "https://site.example/", zerolog.Nop()),
		Logger:   zerolog.Nop(),
	})
	svc := NewEditService(reg, manager, zerolog.Nop())

	begun, err := svc.Begin(ctx, "admin", content.RealmCourses)
	require.NoError(t, err)
	assert.Equal(t, "editing", begun.State)
	assert.True(t, reg.Courses().EditMode())

	session, err := manager.Get(begun.SessionID, "admin")
	require.NoError(t, err)

	_, err = svc.ConfirmSave(ctx, session, "hunter2")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = svc.RequestSave(session)
	require.NoError(t, err)

	_, err = svc.ConfirmSave(ctx, session, "wrong")
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
	assert.Equal(t, editsession.SaveConfirming, session.State())

	saved, err := svc.ConfirmSave(ctx, session, "hunter2")
	require.NoError(t, err)
	assert.True(t, saved.Persisted)
	assert.Equal(t, "viewing", saved.State)
	assert.False(t, reg.Courses().EditMode())
	assert.Equal(t, 0, manager.Len())

	notices := recorder.all()
	require.Len(t, notices, 1)
	assert.Equal(t, "https://site.example/courses", notices[0].PageURL)
	assert.Equal(t, "admin", notices[0].Editor)
}

func TestEditService_BeginUnknownRealm(t *testing.T) {
	reg, _ := newRegistry(t)
	manager := editsession.NewManager(newAuthenticator(t, "pw"), editsession.ManagerConfig{Logger: zerolog.Nop()})
	svc := NewEditService(reg, manager, zerolog.Nop())

	_, err := svc.Begin(context.Background(), "admin", "gallery")
	assert.ErrorIs(t, err, apperrors.ErrRealmNotFound)
	assert.Equal(t, 0, manager.Len())
}

type mailRecorder struct {
	mu      sync.Mutex
	notices []email.SaveNotice
}

func (r *mailRecorder) SendSaveNotification(_ string, n email.SaveNotice) error {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
	return nil
}

func (r *mailRecorder) all() []email.SaveNotice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]email.SaveNotice(nil), r.notices...)
}

func TestSaveMailer_DisabledWithoutRecipient(t *testing.T) {
	recorder := &mailRecorder{}
	NewSaveMailer(recorder, "", "", zerolog.Nop()).Notify(context.Background(), editsession.Notification{Realm: "blog"})
	assert.Empty(t, recorder.all())
}

func TestCatalogService_FallsBackOnUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/blog":
			_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"title":"Spatter","slug":"spatter","body":"**Blood** tells"}]}`))
		case "/blog/missing":
			_, _ = w.Write([]byte(`{"success":false,"message":"not found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client, err := upstream.NewClient(srv.URL, time.Second)
	require.NoError(t, err)
	svc := NewCatalogService(client, zerolog.Nop())
	ctx := context.Background()

	assert.Empty(t, svc.AllCourses(ctx))
	page := svc.Courses(ctx, 1, 10)
	assert.Equal(t, []models.CatalogCourse{}, page.Items)
	assert.Equal(t, int64(0), page.Pagination.TotalItems)

	posts := svc.AllPosts(ctx, "")
	require.Len(t, posts, 1)
	assert.Contains(t, posts[0].HTML, "<strong>Blood</strong>")

	_, err = svc.Post(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestMediaService(t *testing.T) {
	svc := NewMediaService(imageupload.NewUploader(nil, 0), zerolog.Nop())

	resp, err := svc.Format(&dto.FormatRequest{HTML: "<p>Hello</p>", Command: "bold"})
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>Hello</strong></p>", resp.HTML)

	_, err = svc.Format(&dto.FormatRequest{HTML: "<p>Hello</p>", Command: "blink"})
	assert.Error(t, err)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")
	img, err := svc.UploadImage(context.Background(), "dot.png", bytes.NewReader(png))
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MimeType)
	assert.Contains(t, img.URI, "data:image/png;base64,")
}

func TestAuthService_Login(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	svc := NewAuthService(newAuthenticator(t, "hunter2"), jwtService, zerolog.Nop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: " admin ", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "admin", resp.Username)

	claims, err := jwtService.ValidateAndExtractClaims(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleEditor, claims.Role)
}
