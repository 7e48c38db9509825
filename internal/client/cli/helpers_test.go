package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/dmitrijs2005/planwise/internal/api"
	"github.com/dmitrijs2005/planwise/internal/client/models"
	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/logging"
)

type fakeMember struct {
	password, answer, email, role string
}

type fakeAdmin struct {
	password, name, company, position, avatar string
}

// fakeClient is an in-memory stand-in for the server.
type fakeClient struct {
	members map[string]*fakeMember
	admins  map[string]*fakeAdmin
	token   string

	calls      []string
	lastUpdate *api.UpdateAdminRequest
	authErr    error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		members: map[string]*fakeMember{},
		admins:  map[string]*fakeAdmin{},
		token:   "tok",
	}
}

func (f *fakeClient) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeClient) authorized(token string) error {
	if f.authErr != nil {
		return f.authErr
	}
	if token != f.token {
		return common.ErrorUnauthorized
	}
	return nil
}

func (f *fakeClient) Close() error                   { return nil }
func (f *fakeClient) Ping(ctx context.Context) error { return nil }

func (f *fakeClient) HasPassword(ctx context.Context, name string) (bool, error) {
	f.record("HasPassword")
	m, ok := f.members[name]
	if !ok {
		return false, common.ErrorNotFound
	}
	return m.password != "", nil
}

func (f *fakeClient) CreatePassword(ctx context.Context, name, password, answer string) error {
	f.record("CreatePassword")
	m, ok := f.members[name]
	if !ok {
		return common.ErrorNotFound
	}
	if m.password != "" {
		return common.ErrorConflict
	}
	m.password, m.answer = password, strings.ToLower(strings.TrimSpace(answer))
	return nil
}

func (f *fakeClient) MemberLogin(ctx context.Context, name, password string) (*api.Member, string, error) {
	f.record("MemberLogin")
	m, ok := f.members[name]
	if !ok || m.password == "" || m.password != password {
		return nil, "", common.ErrorUnauthorized
	}
	return &api.Member{Name: name, HasPassword: true}, f.token, nil
}

func (f *fakeClient) VerifySecurityAnswer(ctx context.Context, name, answer string) (bool, error) {
	f.record("VerifySecurityAnswer")
	m, ok := f.members[name]
	if !ok {
		return false, common.ErrorNotFound
	}
	if m.answer == "" {
		return false, common.ErrNoAnswerSet
	}
	return m.answer == strings.ToLower(strings.TrimSpace(answer)), nil
}

func (f *fakeClient) ResetPassword(ctx context.Context, name, newPassword string) error {
	f.record("ResetPassword")
	m, ok := f.members[name]
	if !ok {
		return common.ErrorNotFound
	}
	m.password = newPassword
	return nil
}

func (f *fakeClient) AdminSignup(ctx context.Context, req *api.AdminSignupRequest) error {
	f.record("AdminSignup")
	if _, ok := f.admins[req.Email]; ok {
		return common.ErrorConflict
	}
	f.admins[req.Email] = &fakeAdmin{password: req.Password, name: req.Name, company: req.Company, position: req.Position}
	return nil
}

func (f *fakeClient) AdminLogin(ctx context.Context, email, password string) (*api.Admin, string, error) {
	f.record("AdminLogin")
	a, ok := f.admins[email]
	if !ok || a.password != password {
		return nil, "", common.ErrorUnauthorized
	}
	return &api.Admin{Email: email, Name: a.name}, f.token, nil
}

func (f *fakeClient) admin(token, email string) (*fakeAdmin, error) {
	if err := f.authorized(token); err != nil {
		return nil, err
	}
	a, ok := f.admins[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return a, nil
}

func (f *fakeClient) toAPI(email string, a *fakeAdmin) *api.Admin {
	out := &api.Admin{Email: email, Name: a.name, Company: a.company, Position: a.position, Avatar: a.avatar}
	if a.avatar != "" {
		out.AvatarURL = "https://s3.local/get/" + a.avatar
	}
	return out
}

func (f *fakeClient) GetAdmin(ctx context.Context, token, email string) (*api.Admin, error) {
	f.record("GetAdmin")
	a, err := f.admin(token, email)
	if err != nil {
		return nil, err
	}
	return f.toAPI(email, a), nil
}

func (f *fakeClient) UpdateAdmin(ctx context.Context, token string, req *api.UpdateAdminRequest) (*api.Admin, error) {
	f.record("UpdateAdmin")
	f.lastUpdate = req
	a, err := f.admin(token, req.Email)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		a.name = *req.Name
	}
	if req.Company != nil {
		a.company = *req.Company
	}
	if req.Position != nil {
		a.position = *req.Position
	}
	return f.toAPI(req.Email, a), nil
}

func (f *fakeClient) ChangeAdminPassword(ctx context.Context, token, email, current, next string) error {
	f.record("ChangeAdminPassword")
	a, err := f.admin(token, email)
	if err != nil {
		return err
	}
	if a.password != current {
		return common.ErrorUnauthorized
	}
	a.password = next
	return nil
}

func (f *fakeClient) DeleteAdmin(ctx context.Context, token, email string) error {
	f.record("DeleteAdmin")
	if _, err := f.admin(token, email); err != nil {
		return err
	}
	delete(f.admins, email)
	return nil
}

func (f *fakeClient) AvatarUploadURL(ctx context.Context, token, email, contentType string) (string, string, error) {
	f.record("AvatarUploadURL")
	a, err := f.admin(token, email)
	if err != nil {
		return "", "", err
	}
	a.avatar = "avatars/1/key"
	return "https://s3.local/put/" + a.avatar + "?ct=" + contentType, a.avatar, nil
}

func (f *fakeClient) AddMember(ctx context.Context, token, name, email, role string) (*api.Member, error) {
	f.record("AddMember")
	if err := f.authorized(token); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, common.ErrorBadRequest
	}
	if _, ok := f.members[name]; ok {
		return nil, common.ErrorConflict
	}
	f.members[name] = &fakeMember{email: email, role: role}
	return &api.Member{Name: name, Email: email, Role: role}, nil
}

func (f *fakeClient) GetMember(ctx context.Context, token, name string) (*api.Member, error) {
	f.record("GetMember")
	if err := f.authorized(token); err != nil {
		return nil, err
	}
	m, ok := f.members[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &api.Member{Name: name, Email: m.email, Role: m.role, HasPassword: m.password != ""}, nil
}

func (f *fakeClient) ListMembers(ctx context.Context, token string) ([]*api.Member, error) {
	f.record("ListMembers")
	if err := f.authorized(token); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(f.members))
	for n := range f.members {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*api.Member, 0, len(names))
	for _, n := range names {
		m := f.members[n]
		out = append(out, &api.Member{Name: n, Email: m.email, Role: m.role, HasPassword: m.password != ""})
	}
	return out, nil
}

func (f *fakeClient) RemoveMember(ctx context.Context, token, name string) error {
	f.record("RemoveMember")
	if err := f.authorized(token); err != nil {
		return err
	}
	if _, ok := f.members[name]; !ok {
		return common.ErrorNotFound
	}
	delete(f.members, name)
	return nil
}

// memSessions is an in-memory sessionStore.
type memSessions struct {
	s       *models.Session
	cleared int
}

func (m *memSessions) Save(ctx context.Context, s models.Session) error {
	m.s = &s
	return nil
}

func (m *memSessions) Load(ctx context.Context) (*models.Session, error) { return m.s, nil }

func (m *memSessions) Clear(ctx context.Context) error {
	m.s = nil
	m.cleared++
	return nil
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

type testApp struct {
	*App
	client   *fakeClient
	sessions *memSessions
	out      *bytes.Buffer
}

// newTestApp builds an App whose text input comes from lines.
func newTestApp(t *testing.T, fc *fakeClient, lines ...string) *testApp {
	t.Helper()
	store := &memSessions{}
	var out bytes.Buffer
	a := newApp(fc, store, readerFromLines(lines...), &out, logging.Nop{})
	return &testApp{App: a, client: fc, sessions: store, out: &out}
}

// stubPasswords makes getPassword return pws in order, then io.EOF.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	queue := append([]string(nil), pws...)
	getPassword = func(io.Writer, string) ([]byte, error) {
		if len(queue) == 0 {
			return nil, io.EOF
		}
		p := queue[0]
		queue = queue[1:]
		return []byte(p), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func loginAs(ta *testApp, identity, role string) {
	ta.session = &models.Session{Identity: identity, Role: role, Token: ta.client.token}
}
