package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/espresso-tracker/internal/common"
	"github.com/sbilibin2017/espresso-tracker/internal/migrations"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)

	require.NoError(t, migrations.Up(ctx, db.DB))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func createUser(t *testing.T, db *sqlx.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, NewUserWriteRepository(db, nil).Save(context.Background(), user))
	return user
}

func createBean(t *testing.T, db *sqlx.DB, userID uuid.UUID, variety, roaster string) *models.Bean {
	t.Helper()
	bean := &models.Bean{ID: uuid.New(), UserID: userID, Variety: variety, Roaster: &roaster}
	require.NoError(t, NewBeanRepository(db, nil).Create(context.Background(), bean))
	return bean
}

func createRecord(t *testing.T, db *sqlx.DB, userID, beanID uuid.UUID, machine, grinder string) *models.EspressoRecord {
	t.Helper()
	rec := &models.EspressoRecord{ID: uuid.New(), UserID: userID, BeanID: beanID, Machine: machine, Grinder: grinder}
	require.NoError(t, NewRecordRepository(db, nil).Create(context.Background(), rec))
	return rec
}

func countRows(t *testing.T, db *sqlx.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, query, args...))
	return n
}

// --- Users ---
func TestUserRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	writer := NewUserWriteRepository(db, nil)
	reader := NewUserReadRepository(db, nil)

	alice := createUser(t, db, "alice")
	assert.False(t, alice.CreatedAt.IsZero())

	t.Run("GetByUsername", func(t *testing.T) {
		user, err := reader.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alice.ID, user.ID)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("GetByUsername is case-sensitive", func(t *testing.T) {
		user, err := reader.GetByUsername(ctx, "Alice")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Exists by username or email", func(t *testing.T) {
		exists, err := reader.ExistsByUsernameOrEmail(ctx, "alice", "other@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = reader.ExistsByUsernameOrEmail(ctx, "other", "alice@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = reader.ExistsByUsernameOrEmail(ctx, "other", "other@example.com")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		err := writer.Save(ctx, &models.User{ID: uuid.New(), Username: "alice", Email: "new@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, common.ErrAlreadyExists)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		err := writer.Save(ctx, &models.User{ID: uuid.New(), Username: "alice2", Email: "alice@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, common.ErrAlreadyExists)
	})
}

// --- Settings ---
func TestSettingsRepository_EnsureIsIdempotentUnderConcurrency(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	user := createUser(t, db, "settings")
	repo := NewSettingsRepository(db, GetTxFromContext)
	txm := NewTxManager(db)

	const numGoroutines = 20
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	errs := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			errs <- txm.WithinTx(ctx, func(ctx context.Context) error {
				if err := repo.Ensure(ctx, user.ID); err != nil {
					return err
				}
				s, err := repo.Get(ctx, user.ID)
				if err == nil && s == nil {
					err = fmt.Errorf("settings missing after ensure")
				}
				return err
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM user_settings WHERE user_id = $1`, user.ID))
}

func TestSettingsRepository_Update(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	user := createUser(t, db, "bob")
	repo := NewSettingsRepository(db, nil)

	s, err := repo.Get(ctx, user.ID)
	assert.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, repo.Ensure(ctx, user.ID))
	s, err = repo.Lock(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Nil(t, s.DefaultMachine)

	machine := "Linea Mini"
	s.DefaultMachine = &machine
	require.NoError(t, repo.Update(ctx, s))

	s, err = repo.Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, s.DefaultMachine)
	assert.Equal(t, "Linea Mini", *s.DefaultMachine)
	assert.Nil(t, s.DefaultGrinder)

	other := createUser(t, db, "carol")
	err = repo.Update(ctx, &models.UserSettings{ID: s.ID, UserID: other.ID})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

// --- Beans ---
func TestBeanRepository_Ownership(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	repo := NewBeanRepository(db, nil)

	bean := createBean(t, db, alice.ID, "Ethiopia Guji", "Onyx")
	createBean(t, db, alice.ID, "Kenya AA", "Square Mile")

	t.Run("owner sees bean", func(t *testing.T) {
		got, err := repo.Get(ctx, alice.ID, bean.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Ethiopia Guji", got.Variety)
	})

	t.Run("other user cannot get", func(t *testing.T) {
		got, err := repo.Get(ctx, bob.ID, bean.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("other user cannot update", func(t *testing.T) {
		err := repo.Update(ctx, &models.Bean{ID: bean.ID, UserID: bob.ID, Variety: "Hijacked"})
		assert.ErrorIs(t, err, sql.ErrNoRows)

		got, err := repo.Get(ctx, alice.ID, bean.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ethiopia Guji", got.Variety)
		assert.Equal(t, alice.ID, got.UserID)
	})

	t.Run("other user cannot delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, bob.ID, bean.ID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("list is owner-scoped in insertion order", func(t *testing.T) {
		beans, err := repo.List(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, beans, 2)
		assert.Equal(t, "Ethiopia Guji", beans[0].Variety)
		assert.Equal(t, "Kenya AA", beans[1].Variety)

		beans, err = repo.List(ctx, bob.ID)
		assert.NoError(t, err)
		assert.Empty(t, beans)
	})
}

func TestBeanRepository_DeleteCascadesRecords(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	user := createUser(t, db, "alice")
	bean := createBean(t, db, user.ID, "Colombia", "Onyx")
	keep := createBean(t, db, user.ID, "Brazil", "Onyx")

	const n = 5
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, createRecord(t, db, user.ID, bean.ID, "Linea Mini", "Niche").ID)
	}
	kept := createRecord(t, db, user.ID, keep.ID, "Linea Mini", "Niche")

	deleted, err := NewBeanRepository(db, nil).Delete(ctx, user.ID, bean.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	records := NewRecordRepository(db, nil)
	for _, id := range ids {
		rec, err := records.Get(ctx, user.ID, id)
		assert.NoError(t, err)
		assert.Nil(t, rec)
	}
	rec, err := records.Get(ctx, user.ID, kept.ID)
	assert.NoError(t, err)
	assert.NotNil(t, rec)
}

func TestBeanRepository_LockSharedHoldsOffDelete(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	user := createUser(t, db, "alice")
	bean := createBean(t, db, user.ID, "Colombia", "Onyx")

	beans := NewBeanRepository(db, GetTxFromContext)
	records := NewRecordRepository(db, GetTxFromContext)

	type result struct {
		deleted bool
		err     error
	}
	done := make(chan result, 1)

	err := NewTxManager(db).WithinTx(ctx, func(ctx context.Context) error {
		locked, err := beans.LockShared(ctx, user.ID, bean.ID)
		require.NoError(t, err)
		require.NotNil(t, locked)

		go func() {
			deleted, err := NewBeanRepository(db, nil).Delete(context.Background(), user.ID, bean.ID)
			done <- result{deleted, err}
		}()

		select {
		case <-done:
			t.Fatal("bean deleted while a record was being created against it")
		case <-time.After(300 * time.Millisecond):
		}

		return records.Create(ctx, &models.EspressoRecord{
			ID: uuid.New(), UserID: user.ID, BeanID: bean.ID, Machine: "Linea Mini", Grinder: "Niche",
		})
	})
	require.NoError(t, err)

	res := <-done
	require.NoError(t, res.err)
	assert.True(t, res.deleted)
	assert.Zero(t, countRows(t, db, `SELECT COUNT(*) FROM espresso_records WHERE bean_id = $1`, bean.ID))
}

func TestUserDeleteCascades(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	user := createUser(t, db, "alice")
	require.NoError(t, NewSettingsRepository(db, nil).Ensure(ctx, user.ID))
	bean := createBean(t, db, user.ID, "Colombia", "Onyx")
	createRecord(t, db, user.ID, bean.ID, "Linea Mini", "Niche")

	_, err := db.Exec(`DELETE FROM users WHERE id = $1`, user.ID)
	require.NoError(t, err)

	assert.Zero(t, countRows(t, db, `SELECT COUNT(*) FROM user_settings WHERE user_id = $1`, user.ID))
	assert.Zero(t, countRows(t, db, `SELECT COUNT(*) FROM beans WHERE user_id = $1`, user.ID))
	assert.Zero(t, countRows(t, db, `SELECT COUNT(*) FROM espresso_records WHERE user_id = $1`, user.ID))
}

// --- Records ---
func TestRecordRepository_ListFilters(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	gesha := createBean(t, db, alice.ID, "Panama Gesha", "Onyx Coffee Lab")
	kenya := createBean(t, db, alice.ID, "Kenya AA", "Square Mile")

	first := createRecord(t, db, alice.ID, gesha.ID, "Linea Mini", "Niche Zero")
	second := createRecord(t, db, alice.ID, kenya.ID, "Gaggia Classic", "Baratza Sette")
	third := createRecord(t, db, alice.ID, kenya.ID, "LINEA MICRA", "Niche Duo")

	bobBean := createBean(t, db, bob.ID, "Panama Gesha", "Onyx Coffee Lab")
	createRecord(t, db, bob.ID, bobBean.ID, "Linea Mini", "Niche Zero")

	repo := NewRecordRepository(db, nil)

	ids := func(records []models.EspressoRecord) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(records))
		for _, r := range records {
			out = append(out, r.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter models.RecordFilter
		want   []uuid.UUID
	}{
		{"all, newest first", models.RecordFilter{}, []uuid.UUID{third.ID, second.ID, first.ID}},
		{"bean id", models.RecordFilter{BeanID: &kenya.ID}, []uuid.UUID{third.ID, second.ID}},
		{"machine case-insensitive substring", models.RecordFilter{Machine: "mini"}, []uuid.UUID{first.ID}},
		{"machine prefix", models.RecordFilter{Machine: "linea"}, []uuid.UUID{third.ID, first.ID}},
		{"grinder", models.RecordFilter{Grinder: "baratza"}, []uuid.UUID{second.ID}},
		{"bean variety", models.RecordFilter{BeanVariety: "gesha"}, []uuid.UUID{first.ID}},
		{"bean roaster", models.RecordFilter{BeanRoaster: "square"}, []uuid.UUID{third.ID, second.ID}},
		{"combined", models.RecordFilter{BeanRoaster: "square", Grinder: "niche"}, []uuid.UUID{third.ID}},
		{"wildcards match literally", models.RecordFilter{Machine: "%"}, []uuid.UUID{}},
		{"trailing space is significant", models.RecordFilter{Machine: "Mini "}, []uuid.UUID{}},
		{"whitespace matches literally", models.RecordFilter{Grinder: " "}, []uuid.UUID{third.ID, second.ID, first.ID}},
		{"bean owned by other user", models.RecordFilter{BeanID: &bobBean.ID}, []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.List(ctx, alice.ID, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(records))
		})
	}
}

func TestRecordRepository_UpdateAndOwnership(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	bean := createBean(t, db, alice.ID, "Colombia", "Onyx")
	rec := createRecord(t, db, alice.ID, bean.ID, "Linea Mini", "Niche")

	repo := NewRecordRepository(db, nil)

	locked, err := repo.Lock(ctx, alice.ID, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, locked)

	rating := 11
	locked.Rating = &rating
	locked.Grinder = "Niche Duo"
	require.NoError(t, repo.Update(ctx, locked))

	got, err := repo.Get(ctx, alice.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Linea Mini", got.Machine)
	assert.Equal(t, "Niche Duo", got.Grinder)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 11, *got.Rating)

	got, err = repo.Get(ctx, bob.ID, rec.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	locked.UserID = bob.ID
	assert.ErrorIs(t, repo.Update(ctx, locked), sql.ErrNoRows)
}
