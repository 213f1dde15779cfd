package organization_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	orgDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/organization"
	"github.com/frahmantamala/employee-directory/internal/organization"
	organizationPostgres "github.com/frahmantamala/employee-directory/internal/organization/postgres"
	"github.com/frahmantamala/employee-directory/internal/transport"
)

// SQLite-compatible mirrors of the production models; postgres defaults like
// now() do not exist on sqlite.
type SQLiteOrganization struct {
	ID        uuid.UUID `gorm:"column:id;type:text;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SQLiteOrganization) TableName() string {
	return "organizations"
}

type SQLiteOrganizationConfig struct {
	ID             int64                   `gorm:"column:id;primaryKey"`
	OrganizationID uuid.UUID               `gorm:"column:organization_id;type:text;uniqueIndex;not null"`
	VisibleColumns orgDatamodel.ColumnList `gorm:"column:visible_columns;type:text"`
	ColumnOrder    orgDatamodel.ColumnList `gorm:"column:column_order;type:text"`
	CreatedAt      time.Time               `gorm:"column:created_at"`
	UpdatedAt      time.Time               `gorm:"column:updated_at"`
}

func (SQLiteOrganizationConfig) TableName() string {
	return "organization_configs"
}

var _ = Describe("Organization Handler Integration", func() {
	var (
		db         *gorm.DB
		handler    *organization.Handler
		router     *chi.Mux
		activeID   uuid.UUID
		inactiveID uuid.UUID
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteOrganization{}, &SQLiteOrganizationConfig{})
		Expect(err).NotTo(HaveOccurred())

		repo := organizationPostgres.NewOrganizationRepository(db)
		service := organization.NewService(repo, slogger)
		handler = organization.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Get("/api/v1/organizations/", handler.ListOrganizations)
		router.Get("/api/v1/organizations/{id}/config/", handler.GetConfig)

		activeID = uuid.New()
		inactiveID = uuid.New()

		Expect(db.Create(&SQLiteOrganization{ID: activeID, Name: "TechCorp Solutions", IsActive: true}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&SQLiteOrganization{ID: inactiveID, Name: "Dormant Inc", IsActive: false}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&SQLiteOrganizationConfig{
			OrganizationID: activeID,
			VisibleColumns: orgDatamodel.ColumnList{"first_name", "last_name", "email", "department", "position", "status"},
			ColumnOrder:    orgDatamodel.ColumnList{"last_name", "first_name", "email", "department", "position", "status"},
		}).Error).NotTo(HaveOccurred())
	})

	Describe("GET /organizations/", func() {
		It("lists only active organizations with a count", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response organization.OrganizationsResponse
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Count).To(Equal(1))
			Expect(response.Organizations).To(HaveLen(1))
			Expect(response.Organizations[0].Name).To(Equal("TechCorp Solutions"))
		})
	})

	Describe("GET /organizations/{id}/config/", func() {
		It("returns the configured columns and the closed column set", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/"+activeID.String()+"/config/", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response organization.ConfigResponse
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Organization.ID).To(Equal(activeID))
			Expect(response.Config.VisibleColumns).To(HaveLen(6))
			Expect(response.Config.ColumnOrder[0]).To(Equal("last_name"))
			Expect(response.Config.AvailableColumns).To(HaveLen(8))
		})

		It("returns byte-identical payloads across repeated reads", func() {
			path := "/api/v1/organizations/" + activeID.String() + "/config/"

			first := httptest.NewRecorder()
			router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, path, nil))
			second := httptest.NewRecorder()
			router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, path, nil))

			Expect(first.Code).To(Equal(http.StatusOK))
			Expect(second.Body.String()).To(Equal(first.Body.String()))
		})

		It("returns the same 404 body for unknown and inactive organizations", func() {
			unknown := httptest.NewRecorder()
			router.ServeHTTP(unknown, httptest.NewRequest(http.MethodGet, "/api/v1/organizations/"+uuid.NewString()+"/config/", nil))

			inactive := httptest.NewRecorder()
			router.ServeHTTP(inactive, httptest.NewRequest(http.MethodGet, "/api/v1/organizations/"+inactiveID.String()+"/config/", nil))

			Expect(unknown.Code).To(Equal(http.StatusNotFound))
			Expect(inactive.Code).To(Equal(http.StatusNotFound))
			Expect(inactive.Body.String()).To(Equal(unknown.Body.String()))
		})

		It("treats a malformed id like an unknown organization", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/organizations/not-a-uuid/config/", nil))

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
