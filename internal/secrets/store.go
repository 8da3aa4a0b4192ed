package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

var (
	ErrSecretNotFound = errors.New("secret not found")
	ErrEmptySecret    = errors.New("secret has no value")
	ErrDecodeSecret   = errors.New("secret value is not valid JSON")
)

// SecretsManagerAPI is the subset of the Secrets Manager client used by Store.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type Store struct {
	client SecretsManagerAPI
}

func NewStore(client SecretsManagerAPI) *Store {
	return &Store{client: client}
}

// NewAWSStore builds a Store from the default AWS credential chain. An empty
// region leaves region resolution to the SDK (AWS_REGION in Lambda).
func NewAWSStore(ctx context.Context, region string) (*Store, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewStore(secretsmanager.NewFromConfig(cfg)), nil
}

// GetJSON fetches the secret called name and decodes its JSON payload into out.
func (s *Store) GetJSON(ctx context.Context, name string, out any) error {
	resp, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return fmt.Errorf("%w: %s", ErrSecretNotFound, name)
		}
		return fmt.Errorf("get secret value %s: %w", name, err)
	}

	var raw []byte
	switch {
	case resp.SecretString != nil:
		raw = []byte(*resp.SecretString)
	case len(resp.SecretBinary) > 0:
		raw = resp.SecretBinary
	}
	if len(raw) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptySecret, name)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecodeSecret, name, err)
	}
	return nil
}
