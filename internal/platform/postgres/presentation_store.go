package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/slidegen/slidegen-api/internal/domain"
	"github.com/slidegen/slidegen-api/internal/platform/logger"
	"github.com/slidegen/slidegen-api/internal/store"
)

// PostgresPresentationStore implements the store.PresentationStore interface
// using a PostgreSQL database as the storage backend. Slide decks are stored
// as a JSONB column.
type PostgresPresentationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPresentationStore creates a new PostgreSQL implementation of the
// PresentationStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPresentationStore(db store.DBTX, logger *slog.Logger) *PostgresPresentationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPresentationStore{
		db:     db,
		logger: logger.With(slog.String("component", "presentation_store")),
	}
}

// Ensure PostgresPresentationStore implements store.PresentationStore interface
var _ store.PresentationStore = (*PostgresPresentationStore)(nil)

// Create implements store.PresentationStore.Create
// It saves a new presentation to the database, handling domain validation.
// Returns store.ErrShareTokenExists if the share token is already in use.
func (s *PostgresPresentationStore) Create(ctx context.Context, presentation *domain.Presentation) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := presentation.Validate(); err != nil {
		log.Warn("presentation validation failed during create",
			slog.String("error", err.Error()),
			slog.String("presentation_id", presentation.ID.String()))
		return err
	}

	slides, err := json.Marshal(presentation.Slides)
	if err != nil {
		log.Error("failed to marshal slides",
			slog.String("error", err.Error()),
			slog.String("presentation_id", presentation.ID.String()))
		return fmt.Errorf("failed to marshal slides: %w", err)
	}

	query := `
		INSERT INTO presentations (id, title, client_name, source_url, theme, slides, share_token, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		presentation.ID,
		presentation.Title,
		presentation.ClientName,
		presentation.SourceURL,
		presentation.Theme,
		slides,
		presentation.ShareToken,
		presentation.CreatedBy,
		presentation.CreatedAt,
		presentation.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Warn("unique constraint violation during presentation creation",
				slog.String("error", err.Error()),
				slog.String("presentation_id", presentation.ID.String()))
			return fmt.Errorf("%w: %v", store.ErrShareTokenExists, err)
		}

		log.Error("failed to create presentation",
			slog.String("error", err.Error()),
			slog.String("presentation_id", presentation.ID.String()))
		return MapError(err)
	}

	log.Info("presentation created successfully",
		slog.String("presentation_id", presentation.ID.String()),
		slog.String("theme", string(presentation.Theme)),
		slog.Int("slide_count", len(presentation.Slides)))
	return nil
}

// GetByID implements store.PresentationStore.GetByID
// It retrieves a presentation by its unique ID.
// Returns store.ErrPresentationNotFound if the presentation does not exist.
func (s *PostgresPresentationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Presentation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving presentation by ID", slog.String("presentation_id", id.String()))

	query := `
		SELECT id, title, client_name, source_url, theme, slides, share_token, created_by, created_at, updated_at
		FROM presentations
		WHERE id = $1
	`

	return s.scanPresentation(ctx, log, s.db.QueryRowContext(ctx, query, id))
}

// GetByShareToken implements store.PresentationStore.GetByShareToken
// It retrieves a presentation by its opaque share token.
// Returns store.ErrPresentationNotFound if no presentation has the token.
func (s *PostgresPresentationStore) GetByShareToken(ctx context.Context, token string) (*domain.Presentation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving presentation by share token")

	query := `
		SELECT id, title, client_name, source_url, theme, slides, share_token, created_by, created_at, updated_at
		FROM presentations
		WHERE share_token = $1
	`

	return s.scanPresentation(ctx, log, s.db.QueryRowContext(ctx, query, token))
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning logic.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPresentation scans a single presentation row, unmarshaling the slides
// JSONB column into the domain deck.
func (s *PostgresPresentationStore) scanPresentation(
	_ context.Context,
	log *slog.Logger,
	row rowScanner,
) (*domain.Presentation, error) {
	var presentation domain.Presentation
	var theme string
	var slides []byte

	err := row.Scan(
		&presentation.ID,
		&presentation.Title,
		&presentation.ClientName,
		&presentation.SourceURL,
		&theme,
		&slides,
		&presentation.ShareToken,
		&presentation.CreatedBy,
		&presentation.CreatedAt,
		&presentation.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("presentation not found")
			return nil, store.ErrPresentationNotFound
		}
		log.Error("failed to scan presentation row",
			slog.String("error", err.Error()))
		return nil, err
	}

	presentation.Theme = domain.Theme(theme)

	if err := json.Unmarshal(slides, &presentation.Slides); err != nil {
		log.Error("failed to unmarshal slides",
			slog.String("error", err.Error()),
			slog.String("presentation_id", presentation.ID.String()))
		return nil, fmt.Errorf("failed to unmarshal slides: %w", err)
	}

	log.Debug("presentation retrieved successfully",
		slog.String("presentation_id", presentation.ID.String()))
	return &presentation, nil
}

// List implements store.PresentationStore.List
// It retrieves presentations ordered by creation time descending with
// limit/offset pagination, plus the total count for pagination metadata.
func (s *PostgresPresentationStore) List(ctx context.Context, limit, offset int) ([]*domain.Presentation, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 20 // Default limit
	}
	if offset < 0 {
		offset = 0
	}

	log.Debug("listing presentations",
		slog.Int("limit", limit),
		slog.Int("offset", offset))

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM presentations`).Scan(&total); err != nil {
		log.Error("failed to count presentations",
			slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `
		SELECT id, title, client_name, source_url, theme, slides, share_token, created_by, created_at, updated_at
		FROM presentations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to query presentations",
			slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var presentations []*domain.Presentation
	for rows.Next() {
		presentation, err := s.scanPresentation(ctx, log, rows)
		if err != nil {
			return nil, 0, err
		}
		presentations = append(presentations, presentation)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, 0, err
	}

	// Return empty slice instead of nil if no presentations found
	if presentations == nil {
		presentations = []*domain.Presentation{}
	}

	log.Debug("listed presentations",
		slog.Int("count", len(presentations)),
		slog.Int("total", total))
	return presentations, total, nil
}

// Update implements store.PresentationStore.Update
// It saves changes to an existing presentation.
// Returns store.ErrPresentationNotFound if the presentation does not exist.
// Returns validation errors if the presentation data is invalid.
func (s *PostgresPresentationStore) Update(ctx context.Context, presentation *domain.Presentation) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := presentation.Validate(); err != nil {
		log.Warn("presentation validation failed during update",
			slog.String("error", err.Error()),
			slog.String("presentation_id", presentation.ID.String()))
		return err
	}

	slides, err := json.Marshal(presentation.Slides)
	if err != nil {
		log.Error("failed to marshal slides",
			slog.String("error", err.Error()),
			slog.String("presentation_id", presentation.ID.String()))
		return fmt.Errorf("failed to marshal slides: %w", err)
	}

	query := `
		UPDATE presentations
		SET title = $1, client_name = $2, theme = $3, slides = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		presentation.Title,
		presentation.ClientName,
		presentation.Theme,
		slides,
		presentation.UpdatedAt,
		presentation.ID,
	)

	if err != nil {
		log.Error("failed to update presentation",
			slog.String("error", err.Error()),
			slog.String("presentation_id", presentation.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "presentation"); err != nil {
		log.Debug("presentation not found for update",
			slog.String("presentation_id", presentation.ID.String()))
		return store.ErrPresentationNotFound
	}

	log.Info("presentation updated successfully",
		slog.String("presentation_id", presentation.ID.String()))
	return nil
}

// Delete implements store.PresentationStore.Delete
// It removes a presentation from the database by its ID.
// Returns store.ErrPresentationNotFound if the presentation does not exist.
func (s *PostgresPresentationStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM presentations
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete presentation",
			slog.String("error", err.Error()),
			slog.String("presentation_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "presentation"); err != nil {
		log.Debug("presentation not found for delete",
			slog.String("presentation_id", id.String()))
		return store.ErrPresentationNotFound
	}

	log.Info("presentation deleted successfully",
		slog.String("presentation_id", id.String()))
	return nil
}
