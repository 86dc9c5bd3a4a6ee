package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/categorias-api/internal/application/auth"
	"github.com/jhoicas/categorias-api/internal/application/usecase"
	"github.com/jhoicas/categorias-api/internal/application/validation"
	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
	apphttp "github.com/jhoicas/categorias-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/categorias-api/pkg/jwt"
	"github.com/jhoicas/categorias-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "categorias-api-test"
)

// fakeCategoryRepo repositorio en memoria que cuenta inserciones.
type fakeCategoryRepo struct {
	mu     sync.Mutex
	nextID int64
	items  []entity.Category
	err    error
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Now()
	r.items = append(r.items, *c)
	return nil
}

func (r *fakeCategoryRepo) GetByIDAndCompany(_ context.Context, id, companyID int64) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.ID == id && c.CompanyID == companyID {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Category
	for _, c := range r.items {
		if c.CompanyID == companyID {
			cp := c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type fakeResourceRepo struct {
	mu    sync.Mutex
	items []entity.Resource
}

func (r *fakeResourceRepo) Create(_ context.Context, res *entity.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res.ID = int64(len(r.items) + 1)
	r.items = append(r.items, *res)
	return nil
}

type fakeTxRunner struct {
	categories *fakeCategoryRepo
	resources  *fakeResourceRepo
}

func (r *fakeTxRunner) RunResources(_ context.Context, fn func(repository.CategoryRepository, repository.ResourceRepository) error) error {
	return fn(r.categories, r.resources)
}

type testEnv struct {
	app        *fiber.App
	categories *fakeCategoryRepo
	resources  *fakeResourceRepo
	logs       *bytes.Buffer
}

// newTestEnv construye la app completa (router real, verificador real, repos en memoria).
func newTestEnv(t *testing.T, policy apphttp.AuthPolicy) *testEnv {
	t.Helper()
	categories := &fakeCategoryRepo{}
	resources := &fakeResourceRepo{}
	logs := &bytes.Buffer{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(categories),
		ResourceUC: usecase.NewResourceUseCase(&fakeTxRunner{categories: categories, resources: resources}),
		Verifier:   auth.NewCredentialVerifier(auth.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer}),
		Validator:  validation.New(),
		Policy:     policy,
		Logger:     logger.New(logger.Config{Env: "production", Level: "info", Output: logs}),
	})
	return &testEnv{app: app, categories: categories, resources: resources, logs: logs}
}

// bearer genera "Bearer <jwt>" para la empresa indicada.
func bearer(t *testing.T, companyID int64) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, companyID, "user-1", testIssuer, 60)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doJSON lanza la petición y decodifica el cuerpo JSON en out (si out != nil).
func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}
