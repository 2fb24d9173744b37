package shopifyclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	shopifydomain "github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shopify-discount-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ShopCredentials identifica a loja e o token de acesso usados em cada
// chamada. A resolução (sessão ou token estático) acontece antes, uma única
// vez por execução do orquestrador.
type ShopCredentials struct {
	ShopDomain  string
	AccessToken string
}

type Client interface {
	ListProducts(ctx context.Context, creds ShopCredentials, cursor *string, pageSize int) (*shopifydomain.ProductPage, error)
	UpdateVariantPrice(ctx context.Context, creds ShopCredentials, productID, variantID string, price float64, compareAtPrice *float64) error
	AddTags(ctx context.Context, creds ShopCredentials, resourceID string, tags []string) error
	RemoveTags(ctx context.Context, creds ShopCredentials, resourceID string, tags []string) error
	GetProductIDByVariant(ctx context.Context, creds ShopCredentials, variantID string) (string, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type graphQLEnvelope struct {
	Data   jsoniter.RawMessage         `json:"data"`
	Errors []shopifydomain.GraphQLError `json:"errors"`
}

// execute envia um documento GraphQL para a Admin API da loja e decodifica
// o campo data na estrutura de saída.
func (c *ShopifyClient) execute(ctx context.Context, creds ShopCredentials, query string, variables map[string]any, out any) error {
	if creds.ShopDomain == "" || creds.AccessToken == "" {
		return fmt.Errorf("credenciais da loja ausentes")
	}

	endpoint := fmt.Sprintf(
		"https://%s/admin/api/%s/graphql.json",
		creds.ShopDomain,
		c.config.Shopify.APIVersion,
	)

	payload, err := json.Marshal(shopifydomain.GraphQLRequest{
		Query:     query,
		Variables: variables,
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar a requisição GraphQL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", creds.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"shop":   creds.ShopDomain,
			"status": resp.StatusCode,
		}).Error("Admin API retornou status inesperado")
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var envelope graphQLEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, gqlErr := range envelope.Errors {
			messages = append(messages, gqlErr.Message)
		}
		return fmt.Errorf("erros GraphQL da Admin API: %s", strings.Join(messages, "; "))
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("erro ao decodificar o campo data: %w", err)
		}
	}

	return nil
}
