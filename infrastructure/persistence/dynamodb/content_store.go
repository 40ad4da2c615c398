// Package dynamodb persists document trees as single DynamoDB items keyed by
// document id, storing the wire-shape JSON verbatim.
package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"pagecompiler/application/ports"
	"pagecompiler/domain/core/entities"
	pkgerrors "pagecompiler/pkg/errors"
)

// ContentStore implements the ContentStore port using DynamoDB
type ContentStore struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewContentStore creates a new DynamoDB-backed content store
func NewContentStore(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ContentStore {
	return &ContentStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// documentItem represents the DynamoDB item structure for a document
type documentItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	DocumentID string `dynamodbav:"DocumentID"`
	Tree       string `dynamodbav:"Tree"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
}

func documentKey(documentID string) (string, string) {
	return fmt.Sprintf("DOCUMENT#%s", documentID), "TREE"
}

// Load fetches a document's tree. A missing document is found=false, not an
// error.
func (s *ContentStore) Load(ctx context.Context, documentID string) (*entities.ElementTree, bool, error) {
	pk, sk := documentKey(documentID)
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: pk},
			"SK": &types.AttributeValueMemberS{Value: sk},
		},
	})
	if err != nil {
		s.logger.Error("Failed to load document from DynamoDB",
			zap.Error(err),
			zap.String("documentID", documentID),
		)
		return nil, false, pkgerrors.NewStoreError("load", err)
	}
	if out.Item == nil {
		return nil, false, nil
	}

	var item documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, false, pkgerrors.NewStoreError("load", fmt.Errorf("failed to unmarshal document item: %w", err))
	}

	var tree entities.ElementTree
	if err := json.Unmarshal([]byte(item.Tree), &tree); err != nil {
		return nil, false, pkgerrors.NewStoreError("load", fmt.Errorf("failed to decode document tree: %w", err))
	}
	return &tree, true, nil
}

// Save persists a document's tree, replacing any prior version.
func (s *ContentStore) Save(ctx context.Context, documentID string, tree *entities.ElementTree) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return pkgerrors.NewStoreError("save", fmt.Errorf("failed to encode document tree: %w", err))
	}

	pk, sk := documentKey(documentID)
	item := documentItem{
		PK:         pk,
		SK:         sk,
		EntityType: "DOCUMENT",
		DocumentID: documentID,
		Tree:       string(data),
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewStoreError("save", fmt.Errorf("failed to marshal document item: %w", err))
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		s.logger.Error("Failed to save document to DynamoDB",
			zap.Error(err),
			zap.String("documentID", documentID),
		)
		return pkgerrors.NewStoreError("save", err)
	}

	s.logger.Debug("Saved document to DynamoDB",
		zap.String("documentID", documentID),
		zap.Int("bytes", len(data)),
	)
	return nil
}
