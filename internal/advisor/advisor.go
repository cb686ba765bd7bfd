package advisor

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"personapath/internal/llm"
	"personapath/internal/models"
	"personapath/internal/repository"
)

// Completer produces a free-form answer when the role catalog has no
// direct match. Satisfied by llm.MultiProviderClient.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Answer is the result of a single chat query.
type Answer struct {
	Query       string `json:"query"`
	Response    string `json:"response"`
	RoleContext string `json:"role_context"`
	QueryType   string `json:"query_type"`
}

// Assistant answers career questions from the job role catalog, falling
// back to an LLM provider chain when one is configured.
type Assistant struct {
	roles     repository.RoleRepository
	chats     repository.ChatRepository
	completer Completer
	logger    *zap.Logger

	mu    sync.RWMutex
	index *roleIndex
}

func NewAssistant(roles repository.RoleRepository, chats repository.ChatRepository, completer Completer, logger *zap.Logger) (*Assistant, error) {
	a := &Assistant{
		roles:     roles,
		chats:     chats,
		completer: completer,
		logger:    logger,
	}
	if err := a.Refresh(); err != nil {
		return nil, err
	}
	return a, nil
}

// Refresh rebuilds the keyword index from the role catalog. Call it
// after new roles are added so they become matchable.
func (a *Assistant) Refresh() error {
	roles, err := a.roles.GetAll(0)
	if err != nil {
		return err
	}
	idx := buildRoleIndex(roles)

	a.mu.Lock()
	a.index = idx
	a.mu.Unlock()

	a.logger.Debug("role index rebuilt", zap.Int("roles", len(roles)))
	return nil
}

// Answer classifies the query, resolves a role from the catalog and
// renders a response. The exchange is recorded in the user's chat
// history; a history write failure does not fail the request.
func (a *Assistant) Answer(ctx context.Context, userID int64, query string) (*Answer, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))

	a.mu.RLock()
	idx := a.index
	a.mu.RUnlock()

	queryType := ClassifyQueryType(normalized)
	roleTitle := idx.identifyRole(normalized)

	var response string
	roleContext := "General Career"

	if roleTitle != "" {
		role, err := a.roles.GetByTitle(roleTitle)
		if err != nil {
			a.logger.Error("role lookup failed", zap.String("title", roleTitle), zap.Error(err))
		} else if role != nil {
			response = databaseResponse(queryType, role)
			roleContext = role.Title
		}
	}

	if response == "" && a.completer != nil {
		enriched, err := a.completer.Complete(ctx, llm.SystemPrompt, query)
		if err != nil {
			a.logger.Warn("llm providers unavailable, using fallback", zap.Error(err))
		} else {
			response = enriched
		}
	}

	if response == "" {
		response = fallbackResponse(normalized)
	}

	entry := &models.ChatEntry{
		UserID:      userID,
		Query:       query,
		Response:    response,
		RoleContext: roleContext,
	}
	if err := a.chats.Save(entry); err != nil {
		a.logger.Warn("failed to record chat history", zap.Int64("user_id", userID), zap.Error(err))
	}

	return &Answer{
		Query:       query,
		Response:    response,
		RoleContext: roleContext,
		QueryType:   string(queryType),
	}, nil
}
