package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"bizdesk/internal/models"
)

// Boards wraps the /api/v1/boards resource. There is no Delete: the
// server never exposes one.
type Boards struct {
	c *Client
}

// Boards returns the board resource wrapper.
func (c *Client) Boards() *Boards {
	return &Boards{c: c}
}

func (b *Boards) List(ctx context.Context, companyID int64) ([]models.Board, error) {
	path := "/api/v1/boards"
	if companyID != 0 {
		path += "?companyId=" + strconv.FormatInt(companyID, 10)
	}
	var resp struct {
		Boards []models.Board `json:"boards"`
	}
	if err := b.c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Boards, nil
}

func (b *Boards) Get(ctx context.Context, id int64) (models.Board, error) {
	var resp struct {
		Board models.Board `json:"board"`
	}
	if err := b.c.get(ctx, fmt.Sprintf("/api/v1/boards/%d", id), &resp); err != nil {
		return models.Board{}, err
	}
	return resp.Board, nil
}

func (b *Boards) Create(ctx context.Context, board models.Board) (models.Board, error) {
	var resp struct {
		Board models.Board `json:"board"`
	}
	if err := b.c.do(ctx, http.MethodPost, "/api/v1/boards", board, &resp); err != nil {
		return models.Board{}, err
	}
	return resp.Board, nil
}

func (b *Boards) Update(ctx context.Context, board models.Board) (models.Board, error) {
	ticket := b.c.seq.begin("board", board.ID)

	var resp struct {
		Board models.Board `json:"board"`
	}
	if err := b.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/boards/%d", board.ID), board, &resp); err != nil {
		return models.Board{}, err
	}
	if !b.c.seq.commit("board", board.ID, ticket) {
		return models.Board{}, ErrStale
	}
	return resp.Board, nil
}
