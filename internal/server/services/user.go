// Package services contains server-side business logic. This file implements
// UserService: registration, profile management, password changes, account
// deactivation, and presigned avatar URLs.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mkravets/tasktrack/internal/common"
	"github.com/mkravets/tasktrack/internal/dbx"
	"github.com/mkravets/tasktrack/internal/server/auth"
	sc "github.com/mkravets/tasktrack/internal/server/config"
	"github.com/mkravets/tasktrack/internal/server/models"
	"github.com/mkravets/tasktrack/internal/server/repositories/repomanager"
)

// Function seams for the AWS SDK so presign flows are testable without a
// live endpoint.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const presignValidity = 15 * time.Minute

// UserService provides account operations on top of the users repository:
// - Register: policy-check, hash, and create accounts
// - GetProfile / UpdateProfile: read and edit the caller's own account
// - ChangePassword: verify the old password and swap in a new hash
// - Deactivate / List: administrative operations
// - AvatarUploadURL / AvatarDownloadURL: presigned object-storage access
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.Hasher
	policy      auth.Policy
	config      *sc.Config
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      auth.NewHasher(cfg.BcryptCost),
		policy: auth.Policy{
			MinLength:      cfg.PasswordMinLength,
			RequireUpper:   cfg.PasswordRequireUpper,
			RequireDigit:   cfg.PasswordRequireDigit,
			RequireSpecial: cfg.PasswordRequireSpecial,
		},
		config: cfg,
	}
}

// Register creates a new active account. The password is validated against
// the configured policy and stored only as a bcrypt hash. A username or
// email already in use surfaces as ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if err := s.policy.Validate(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	repo := s.repomanager.Users(s.db)
	return repo.Create(ctx, user)
}

// GetProfile returns the account for the given id.
func (s *UserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// UpdateProfile sets the nickname and avatar key. Empty arguments leave the
// current value in place, so callers can update either field independently.
func (s *UserService) UpdateProfile(ctx context.Context, id, nickname, avatarKey string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if nickname != "" {
		user.Nickname = nickname
	}
	if avatarKey != "" {
		user.AvatarKey = avatarKey
	}

	if err := repo.UpdateProfile(ctx, id, user.Nickname, user.AvatarKey); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password, checks the replacement
// against the policy, and swaps the hash. Read and write run in one
// transaction so a concurrent change cannot interleave.
func (s *UserService) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	if err := s.policy.Validate(newPassword); err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !s.hasher.Verify(oldPassword, user.PasswordHash) {
			return common.ErrInvalidCredentials
		}

		hash, err := s.hasher.Hash(newPassword)
		if err != nil {
			return common.ErrorInternal
		}
		return repo.UpdatePasswordHash(ctx, id, hash)
	})
}

// Deactivate soft-deletes the account. The row stays so historical data and
// issued-token subjects keep resolving; the resolver blocks access.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	return s.repomanager.Users(s.db).SetActive(ctx, id, false)
}

// List returns every account, for the administrative listing.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

func avatarStorageKey(userID string) string {
	return fmt.Sprintf("avatars/%s/%s", userID, uuid.NewString())
}

func (s *UserService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// AvatarUploadURL mints a fresh storage key for the user and a presigned PUT
// URL for it. The key becomes the profile's avatar reference once the client
// confirms the upload via UpdateProfile.
func (s *UserService) AvatarUploadURL(ctx context.Context, userID string) (string, string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := avatarStorageKey(userID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// AvatarDownloadURL returns a presigned GET URL for a stored avatar key.
func (s *UserService) AvatarDownloadURL(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
