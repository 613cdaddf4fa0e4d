package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// PgxPool is the subset of pgxpool.Pool the storage relies on. Tests inject
// a pgxmock pool through it.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   PgxPool
	logger *slog.Logger
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (PgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

type profileRepository struct {
	storage *Storage
}

type pointsRepository struct {
	storage *Storage
}

type payoutRepository struct {
	storage *Storage
}

type followRepository struct {
	storage *Storage
}

type messageRepository struct {
	storage *Storage
}

type contentRepository struct {
	storage *Storage
}

type notificationRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Profiles() repository.ProfileRepository {
	return &profileRepository{storage: s}
}

func (s *Storage) Points() repository.PointsRepository {
	return &pointsRepository{storage: s}
}

func (s *Storage) Payouts() repository.PayoutRepository {
	return &payoutRepository{storage: s}
}

func (s *Storage) Follows() repository.FollowRepository {
	return &followRepository{storage: s}
}

func (s *Storage) Messages() repository.MessageRepository {
	return &messageRepository{storage: s}
}

func (s *Storage) Content() repository.ContentRepository {
	return &contentRepository{storage: s}
}

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            email TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'listener',
            avatar_url TEXT NOT NULL DEFAULT '',
            bio TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS points (
            user_id BIGINT PRIMARY KEY REFERENCES profiles(id),
            points BIGINT NOT NULL DEFAULT 0 CHECK (points >= 0),
            last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS point_transactions (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES profiles(id),
            reason TEXT NOT NULL,
            amount BIGINT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payout_requests (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES profiles(id),
            points_amount BIGINT NOT NULL,
            usd_amount DOUBLE PRECISION NOT NULL,
            wallet_address TEXT NOT NULL,
            verification_image_url TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            resolved_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS follows (
            follower_id BIGINT NOT NULL REFERENCES profiles(id),
            following_id BIGINT NOT NULL REFERENCES profiles(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            PRIMARY KEY (follower_id, following_id),
            CHECK (follower_id <> following_id)
        )`,
		`CREATE TABLE IF NOT EXISTS messages (
            id UUID PRIMARY KEY,
            sender_id BIGINT NOT NULL REFERENCES profiles(id),
            recipient_id BIGINT NOT NULL REFERENCES profiles(id),
            content TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS group_chats (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            creator_id BIGINT NOT NULL REFERENCES profiles(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS group_chat_members (
            group_id BIGINT NOT NULL REFERENCES group_chats(id),
            user_id BIGINT NOT NULL REFERENCES profiles(id),
            PRIMARY KEY (group_id, user_id)
        )`,
		`CREATE TABLE IF NOT EXISTS group_messages (
            id UUID PRIMARY KEY,
            group_id BIGINT NOT NULL REFERENCES group_chats(id),
            sender_id BIGINT NOT NULL REFERENCES profiles(id),
            content TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS tracks (
            id SERIAL PRIMARY KEY,
            creator_id BIGINT NOT NULL REFERENCES profiles(id),
            title TEXT NOT NULL,
            audio_url TEXT NOT NULL,
            cover_url TEXT NOT NULL DEFAULT '',
            play_count BIGINT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS posts (
            id SERIAL PRIMARY KEY,
            author_id BIGINT NOT NULL REFERENCES profiles(id),
            content TEXT NOT NULL,
            media_url TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS creator_stats (
            creator_id BIGINT NOT NULL REFERENCES profiles(id),
            stat_type TEXT NOT NULL,
            value BIGINT NOT NULL DEFAULT 0,
            PRIMARY KEY (creator_id, stat_type)
        )`,
		`CREATE TABLE IF NOT EXISTS notifications (
            id SERIAL PRIMARY KEY,
            kind TEXT NOT NULL,
            recipient_email TEXT NOT NULL,
            subject TEXT NOT NULL,
            body TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            attempts INT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user ON point_transactions(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_payouts_user ON payout_requests(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_payouts_status ON payout_requests(status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages(sender_id, recipient_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_group_messages_group ON group_messages(group_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_author ON posts(author_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_status ON notifications(status, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ProfileRepository implementation ---

func (r *profileRepository) Create(ctx context.Context, username, email, passwordHash string, role model.Role) (*model.Profile, error) {
	const query = `INSERT INTO profiles (username, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	var p model.Profile
	err := r.storage.pool.QueryRow(ctx, query, username, email, passwordHash, role).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	p.Username = username
	p.Email = email
	p.PasswordHash = passwordHash
	p.Role = role
	return &p, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*model.Profile, error) {
	const query = `SELECT id, username, email, password_hash, role, avatar_url, bio, created_at FROM profiles WHERE username=$1`
	return r.scanProfile(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *profileRepository) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	const query = `SELECT id, username, email, password_hash, role, avatar_url, bio, created_at FROM profiles WHERE id=$1`
	return r.scanProfile(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *profileRepository) scanProfile(row pgx.Row) (*model.Profile, error) {
	var p model.Profile
	err := row.Scan(&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.Role, &p.AvatarURL, &p.Bio, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) UpdateAvatar(ctx context.Context, id int64, avatarURL string) error {
	const query = `UPDATE profiles SET avatar_url=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, avatarURL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *profileRepository) UpdateBio(ctx context.Context, id int64, bio string) error {
	const query = `UPDATE profiles SET bio=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, bio, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- PointsRepository implementation ---

func (s *Storage) appendLedgerTx(ctx context.Context, tx pgx.Tx, userID int64, reason model.AwardReason, amount int64) error {
	const insertTransaction = `INSERT INTO point_transactions (user_id, reason, amount) VALUES ($1, $2, $3)`
	if _, err := tx.Exec(ctx, insertTransaction, userID, reason, amount); err != nil {
		return err
	}

	const updateBalance = `INSERT INTO points (user_id, points)
                           VALUES ($1, $2)
                           ON CONFLICT (user_id) DO UPDATE
                           SET points = points.points + EXCLUDED.points,
                               last_updated = NOW()`
	if _, err := tx.Exec(ctx, updateBalance, userID, amount); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return domainErrors.ErrInsufficientPoints
		}
		return err
	}
	return nil
}

func (r *pointsRepository) Award(ctx context.Context, userID int64, reason model.AwardReason, amount int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.appendLedgerTx(ctx, tx, userID, reason, amount)
	})
}

func (r *pointsRepository) Balance(ctx context.Context, userID int64) (*model.PointBalance, error) {
	const query = `SELECT points, last_updated FROM points WHERE user_id=$1`
	balance := model.PointBalance{UserID: userID}
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&balance.Points, &balance.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.PointBalance{UserID: userID}, nil
		}
		return nil, err
	}
	return &balance, nil
}

func (r *pointsRepository) Transactions(ctx context.Context, userID int64) ([]model.PointTransaction, error) {
	const query = `SELECT id, user_id, reason, amount, created_at
                   FROM point_transactions WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PointTransaction
	for rows.Next() {
		var t model.PointTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Reason, &t.Amount, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *pointsRepository) TransactionSum(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM point_transactions WHERE user_id=$1`
	var sum int64
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// --- PayoutRepository implementation ---

func (r *payoutRepository) Create(ctx context.Context, params repository.CreatePayoutParams) (*model.PayoutRequest, error) {
	request := &model.PayoutRequest{
		UserID:               params.UserID,
		PointsAmount:         params.PointsAmount,
		USDAmount:            params.USDAmount,
		WalletAddress:        params.WalletAddress,
		VerificationImageURL: params.VerificationImageURL,
		Status:               model.PayoutStatusPending,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const balanceQuery = `SELECT points FROM points WHERE user_id=$1 FOR UPDATE`
		var current int64
		err := tx.QueryRow(ctx, balanceQuery, params.UserID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				current = 0
			} else {
				return err
			}
		}
		if current < params.PointsAmount {
			return domainErrors.ErrInsufficientPoints
		}

		const updateBalance = `UPDATE points SET points = points - $2, last_updated = NOW() WHERE user_id=$1`
		if _, err := tx.Exec(ctx, updateBalance, params.UserID, params.PointsAmount); err != nil {
			return err
		}

		const insertTransaction = `INSERT INTO point_transactions (user_id, reason, amount) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, insertTransaction, params.UserID, model.ReasonPayoutRequest, -params.PointsAmount); err != nil {
			return err
		}

		const insertRequest = `INSERT INTO payout_requests (user_id, points_amount, usd_amount, wallet_address, verification_image_url)
                               VALUES ($1, $2, $3, $4, $5)
                               RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insertRequest, params.UserID, params.PointsAmount, params.USDAmount, params.WalletAddress, params.VerificationImageURL).Scan(&request.ID, &request.CreatedAt); err != nil {
			return err
		}

		const insertNotification = `INSERT INTO notifications (kind, recipient_email, subject, body)
                                    VALUES ('payout_requested', $1, $2, $3)`
		subject := "Payout request received"
		body := fmt.Sprintf("Your payout request for $%.2f (%d points) is pending review.", params.USDAmount, params.PointsAmount)
		if _, err := tx.Exec(ctx, insertNotification, params.RecipientEmail, subject, body); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (r *payoutRepository) GetByID(ctx context.Context, id int64) (*model.PayoutRequest, error) {
	const query = `SELECT id, user_id, points_amount, usd_amount, wallet_address, verification_image_url, status, created_at, resolved_at
                   FROM payout_requests WHERE id=$1`
	var p model.PayoutRequest
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.UserID, &p.PointsAmount, &p.USDAmount, &p.WalletAddress, &p.VerificationImageURL, &p.Status, &p.CreatedAt, &p.ResolvedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *payoutRepository) list(ctx context.Context, query string, arg any) ([]model.PayoutRequest, error) {
	rows, err := r.storage.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PayoutRequest
	for rows.Next() {
		var p model.PayoutRequest
		if err := rows.Scan(&p.ID, &p.UserID, &p.PointsAmount, &p.USDAmount, &p.WalletAddress, &p.VerificationImageURL, &p.Status, &p.CreatedAt, &p.ResolvedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *payoutRepository) ListByUser(ctx context.Context, userID int64) ([]model.PayoutRequest, error) {
	const query = `SELECT id, user_id, points_amount, usd_amount, wallet_address, verification_image_url, status, created_at, resolved_at
                   FROM payout_requests WHERE user_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *payoutRepository) ListByStatus(ctx context.Context, status model.PayoutStatus) ([]model.PayoutRequest, error) {
	const query = `SELECT id, user_id, points_amount, usd_amount, wallet_address, verification_image_url, status, created_at, resolved_at
                   FROM payout_requests WHERE status=$1 ORDER BY created_at`
	return r.list(ctx, query, string(status))
}

func (r *payoutRepository) Resolve(ctx context.Context, id int64, status model.PayoutStatus) (*model.PayoutRequest, error) {
	var resolved *model.PayoutRequest
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectRequest = `SELECT id, user_id, points_amount, usd_amount, wallet_address, verification_image_url, status, created_at
                               FROM payout_requests WHERE id=$1 FOR UPDATE`
		var p model.PayoutRequest
		err := tx.QueryRow(ctx, selectRequest, id).Scan(&p.ID, &p.UserID, &p.PointsAmount, &p.USDAmount, &p.WalletAddress, &p.VerificationImageURL, &p.Status, &p.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if p.Status != model.PayoutStatusPending {
			return domainErrors.ErrAlreadyResolved
		}

		const updateRequest = `UPDATE payout_requests SET status=$1, resolved_at=NOW() WHERE id=$2 RETURNING resolved_at`
		var resolvedAt time.Time
		if err := tx.QueryRow(ctx, updateRequest, string(status), id).Scan(&resolvedAt); err != nil {
			return err
		}

		if status == model.PayoutStatusDenied {
			if err := r.storage.appendLedgerTx(ctx, tx, p.UserID, model.ReasonPayoutRefund, p.PointsAmount); err != nil {
				return err
			}
		}

		p.Status = status
		p.ResolvedAt = &resolvedAt
		resolved = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// --- FollowRepository implementation ---

func (r *followRepository) Follow(ctx context.Context, followerID, followingID int64) (bool, error) {
	const query = `INSERT INTO follows (follower_id, following_id) VALUES ($1, $2)
                   ON CONFLICT (follower_id, following_id) DO NOTHING`
	tag, err := r.storage.pool.Exec(ctx, query, followerID, followingID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return false, domainErrors.ErrSelfFollow
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID int64) error {
	const query = `DELETE FROM follows WHERE follower_id=$1 AND following_id=$2`
	_, err := r.storage.pool.Exec(ctx, query, followerID, followingID)
	return err
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id=$1 AND following_id=$2)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, followerID, followingID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *followRepository) Counts(ctx context.Context, userID int64) (*model.FollowCounts, error) {
	const query = `SELECT
                     (SELECT COUNT(*) FROM follows WHERE following_id=$1),
                     (SELECT COUNT(*) FROM follows WHERE follower_id=$1)`
	var counts model.FollowCounts
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&counts.Followers, &counts.Following); err != nil {
		return nil, err
	}
	return &counts, nil
}

func (r *followRepository) listIDs(ctx context.Context, query string, userID int64) ([]int64, error) {
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *followRepository) Followers(ctx context.Context, userID int64) ([]int64, error) {
	const query = `SELECT follower_id FROM follows WHERE following_id=$1 ORDER BY created_at DESC`
	return r.listIDs(ctx, query, userID)
}

func (r *followRepository) Following(ctx context.Context, userID int64) ([]int64, error) {
	const query = `SELECT following_id FROM follows WHERE follower_id=$1 ORDER BY created_at DESC`
	return r.listIDs(ctx, query, userID)
}

// --- MessageRepository implementation ---

func (r *messageRepository) CreateDirect(ctx context.Context, msg *model.Message) error {
	const query = `INSERT INTO messages (id, sender_id, recipient_id, content) VALUES ($1, $2, $3, $4) RETURNING created_at`
	return r.storage.pool.QueryRow(ctx, query, msg.ID, msg.SenderID, msg.RecipientID, msg.Content).Scan(&msg.CreatedAt)
}

func (r *messageRepository) ListDirect(ctx context.Context, userA, userB int64, limit int) ([]model.Message, error) {
	const query = `SELECT id, sender_id, recipient_id, content, created_at FROM messages
                   WHERE (sender_id=$1 AND recipient_id=$2) OR (sender_id=$2 AND recipient_id=$1)
                   ORDER BY created_at DESC LIMIT $3`
	rows, err := r.storage.pool.Query(ctx, query, userA, userB, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *messageRepository) DirectPartners(ctx context.Context, userID int64) ([]int64, error) {
	const query = `SELECT DISTINCT CASE WHEN sender_id=$1 THEN recipient_id ELSE sender_id END
                   FROM messages WHERE sender_id=$1 OR recipient_id=$1`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *messageRepository) DeleteDirect(ctx context.Context, messageID string, senderID int64) error {
	const query = `DELETE FROM messages WHERE id=$1 AND sender_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, messageID, senderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	const existsQuery = `SELECT EXISTS (SELECT 1 FROM messages WHERE id=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, existsQuery, messageID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return domainErrors.ErrForbidden
	}
	return domainErrors.ErrNotFound
}

func (r *messageRepository) CreateGroup(ctx context.Context, name string, creatorID int64, memberIDs []int64) (*model.GroupChat, error) {
	group := &model.GroupChat{Name: name, CreatorID: creatorID}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertGroup = `INSERT INTO group_chats (name, creator_id) VALUES ($1, $2) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insertGroup, name, creatorID).Scan(&group.ID, &group.CreatedAt); err != nil {
			return err
		}

		const insertMember = `INSERT INTO group_chat_members (group_id, user_id) VALUES ($1, $2)
                              ON CONFLICT (group_id, user_id) DO NOTHING`
		members := append([]int64{creatorID}, memberIDs...)
		for _, memberID := range members {
			if _, err := tx.Exec(ctx, insertMember, group.ID, memberID); err != nil {
				return err
			}
		}
		group.MemberIDs = members
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (r *messageRepository) GroupByID(ctx context.Context, groupID int64) (*model.GroupChat, error) {
	const query = `SELECT id, name, creator_id, created_at FROM group_chats WHERE id=$1`
	var g model.GroupChat
	err := r.storage.pool.QueryRow(ctx, query, groupID).Scan(&g.ID, &g.Name, &g.CreatorID, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const membersQuery = `SELECT user_id FROM group_chat_members WHERE group_id=$1`
	rows, err := r.storage.pool.Query(ctx, membersQuery, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		g.MemberIDs = append(g.MemberIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *messageRepository) GroupsByUser(ctx context.Context, userID int64) ([]model.GroupChat, error) {
	const query = `SELECT gc.id, gc.name, gc.creator_id, gc.created_at
                   FROM group_chats gc
                   JOIN group_chat_members gcm ON gcm.group_id = gc.id
                   WHERE gcm.user_id=$1 ORDER BY gc.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.GroupChat
	for rows.Next() {
		var g model.GroupChat
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatorID, &g.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *messageRepository) IsGroupMember(ctx context.Context, groupID, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM group_chat_members WHERE group_id=$1 AND user_id=$2)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, groupID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *messageRepository) CreateGroupMessage(ctx context.Context, msg *model.GroupMessage) error {
	const query = `INSERT INTO group_messages (id, group_id, sender_id, content) VALUES ($1, $2, $3, $4) RETURNING created_at`
	return r.storage.pool.QueryRow(ctx, query, msg.ID, msg.GroupID, msg.SenderID, msg.Content).Scan(&msg.CreatedAt)
}

func (r *messageRepository) ListGroupMessages(ctx context.Context, groupID int64, limit int) ([]model.GroupMessage, error) {
	const query = `SELECT id, group_id, sender_id, content, created_at FROM group_messages
                   WHERE group_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, groupID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.GroupMessage
	for rows.Next() {
		var m model.GroupMessage
		if err := rows.Scan(&m.ID, &m.GroupID, &m.SenderID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *messageRepository) DeleteGroupMessage(ctx context.Context, messageID string, callerID int64) error {
	const query = `DELETE FROM group_messages gm
                   USING group_chats gc
                   WHERE gm.id=$1 AND gc.id = gm.group_id AND (gm.sender_id=$2 OR gc.creator_id=$2)`
	tag, err := r.storage.pool.Exec(ctx, query, messageID, callerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	const existsQuery = `SELECT EXISTS (SELECT 1 FROM group_messages WHERE id=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, existsQuery, messageID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return domainErrors.ErrForbidden
	}
	return domainErrors.ErrNotFound
}

// --- ContentRepository implementation ---

func (r *contentRepository) CreateTrack(ctx context.Context, track *model.Track) error {
	const query = `INSERT INTO tracks (creator_id, title, audio_url, cover_url) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return r.storage.pool.QueryRow(ctx, query, track.CreatorID, track.Title, track.AudioURL, track.CoverURL).Scan(&track.ID, &track.CreatedAt)
}

func (r *contentRepository) TrackByID(ctx context.Context, id int64) (*model.Track, error) {
	const query = `SELECT id, creator_id, title, audio_url, cover_url, play_count, created_at FROM tracks WHERE id=$1`
	var t model.Track
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.CreatorID, &t.Title, &t.AudioURL, &t.CoverURL, &t.PlayCount, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *contentRepository) ListTracksByCreator(ctx context.Context, creatorID int64) ([]model.Track, error) {
	const query = `SELECT id, creator_id, title, audio_url, cover_url, play_count, created_at
                   FROM tracks WHERE creator_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Track
	for rows.Next() {
		var t model.Track
		if err := rows.Scan(&t.ID, &t.CreatorID, &t.Title, &t.AudioURL, &t.CoverURL, &t.PlayCount, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *contentRepository) IncrementPlayCount(ctx context.Context, trackID int64) error {
	const query = `UPDATE tracks SET play_count = play_count + 1 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, trackID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *contentRepository) CreatePost(ctx context.Context, post *model.Post) error {
	const query = `INSERT INTO posts (author_id, content, media_url) VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.storage.pool.QueryRow(ctx, query, post.AuthorID, post.Content, post.MediaURL).Scan(&post.ID, &post.CreatedAt)
}

func (r *contentRepository) Feed(ctx context.Context, userID int64, limit int) ([]model.Post, error) {
	const query = `SELECT id, author_id, content, media_url, created_at FROM posts
                   WHERE author_id=$1 OR author_id IN (SELECT following_id FROM follows WHERE follower_id=$1)
                   ORDER BY created_at DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Content, &p.MediaURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *contentRepository) IncrementCreatorStat(ctx context.Context, creatorID int64, statType string, delta int64) error {
	const query = `INSERT INTO creator_stats (creator_id, stat_type, value)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (creator_id, stat_type) DO UPDATE
                   SET value = creator_stats.value + EXCLUDED.value`
	_, err := r.storage.pool.Exec(ctx, query, creatorID, statType, delta)
	return err
}

func (r *contentRepository) CreatorStats(ctx context.Context, creatorID int64) ([]model.CreatorStat, error) {
	const query = `SELECT creator_id, stat_type, value FROM creator_stats WHERE creator_id=$1 ORDER BY stat_type`
	rows, err := r.storage.pool.Query(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CreatorStat
	for rows.Next() {
		var s model.CreatorStat
		if err := rows.Scan(&s.CreatorID, &s.StatType, &s.Value); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- NotificationRepository implementation ---

func (r *notificationRepository) Enqueue(ctx context.Context, n *model.Notification) error {
	const query = `INSERT INTO notifications (kind, recipient_email, subject, body) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	if err := r.storage.pool.QueryRow(ctx, query, n.Kind, n.RecipientEmail, n.Subject, n.Body).Scan(&n.ID, &n.CreatedAt); err != nil {
		return err
	}
	n.Status = model.NotificationStatusPending
	return nil
}

func (r *notificationRepository) SelectBatchForDispatch(ctx context.Context, limit int) ([]model.Notification, error) {
	const selectQuery = `SELECT id, kind, recipient_email, subject, body, status, attempts, created_at
                         FROM notifications
                         WHERE status='pending'
                         ORDER BY created_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var notifications []model.Notification
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var n model.Notification
			if err := rows.Scan(&n.ID, &n.Kind, &n.RecipientEmail, &n.Subject, &n.Body, &n.Status, &n.Attempts, &n.CreatedAt); err != nil {
				return err
			}
			notifications = append(notifications, n)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for i := range notifications {
			if _, err := tx.Exec(ctx, `UPDATE notifications SET attempts = attempts + 1 WHERE id=$1`, notifications[i].ID); err != nil {
				return err
			}
			notifications[i].Attempts++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkSent(ctx context.Context, id int64) error {
	const query = `UPDATE notifications SET status='sent' WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id)
	return err
}

func (r *notificationRepository) MarkFailed(ctx context.Context, id int64, terminal bool) error {
	if !terminal {
		return nil
	}
	const query = `UPDATE notifications SET status='failed' WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id)
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
