package leitner

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/at-ishikawa/leitner/internal/card"
	mock_leitner "github.com/at-ishikawa/leitner/internal/mocks/leitner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionConfig_Limits(t *testing.T) {
	tests := []struct {
		name       string
		config     SessionConfig
		wantReview int
		wantKnown  int
	}{
		{name: "defaults", config: SessionConfig{TotalSize: 100, ReviewPercent: 80, KnownPercent: 4}, wantReview: 80, wantKnown: 4},
		{name: "floors", config: SessionConfig{TotalSize: 9, ReviewPercent: 80, KnownPercent: 4}, wantReview: 7, wantKnown: 0},
		{name: "empty", config: SessionConfig{}, wantReview: 0, wantKnown: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantReview, tt.config.ReviewLimit())
			assert.Equal(t, tt.wantKnown, tt.config.KnownLimit())
		})
	}
}

func idsOf(cards []card.Card) []int64 {
	res := make([]int64, 0, len(cards))
	for _, c := range cards {
		res = append(res, c.ID)
	}
	return res
}

func scoredCards(from, to int64) []card.Scored {
	var res []card.Scored
	for id := from; id <= to; id++ {
		res = append(res, card.Scored{Card: reviewedCard(id, 1, 0), Score: 1})
	}
	return res
}

func plainCards(category card.Category, from, to int64) []card.Card {
	var res []card.Card
	for id := from; id <= to; id++ {
		c := card.NewCard("q", "a", nil)
		if category != card.CategoryNew {
			c = c.Reviewed(category, 0)
		}
		c.ID = id
		res = append(res, c)
	}
	return res
}

func TestSelector_BuildSession(t *testing.T) {
	const today card.DayStamp = 19788
	config := SessionConfig{TotalSize: 10, ReviewPercent: 50, KnownPercent: 20}

	tests := []struct {
		name      string
		setupMock func(*mock_leitner.MockSource)
		wantIDs   []int64
	}{
		{
			name: "pools fill the session",
			setupMock: func(m *mock_leitner.MockSource) {
				m.EXPECT().FetchDueWithScore(gomock.Any(), today, 5).Return(scoredCards(1, 5), nil)
				m.EXPECT().FetchMastered(gomock.Any(), 2).Return(plainCards(card.CategoryMastered, 6, 7), nil)
				m.EXPECT().FetchNew(gomock.Any(), 3).Return(plainCards(card.CategoryNew, 8, 10), nil)
			},
			wantIDs: []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name: "new cards take the room left by short pools",
			setupMock: func(m *mock_leitner.MockSource) {
				m.EXPECT().FetchDueWithScore(gomock.Any(), today, 5).Return(scoredCards(1, 2), nil)
				m.EXPECT().FetchMastered(gomock.Any(), 2).Return(nil, nil)
				m.EXPECT().FetchNew(gomock.Any(), 8).Return(plainCards(card.CategoryNew, 3, 5), nil)
			},
			wantIDs: []int64{1, 2, 3, 4, 5},
		},
		{
			name: "empty deck",
			setupMock: func(m *mock_leitner.MockSource) {
				m.EXPECT().FetchDueWithScore(gomock.Any(), today, 5).Return(nil, nil)
				m.EXPECT().FetchMastered(gomock.Any(), 2).Return(nil, nil)
				m.EXPECT().FetchNew(gomock.Any(), 10).Return(nil, nil)
			},
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := mock_leitner.NewMockSource(ctrl)
			tt.setupMock(source)

			selector := NewSelector(source, config, rand.New(rand.NewPCG(1, 2)))
			session, err := selector.BuildSession(context.Background(), today)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(session), config.TotalSize)
			assert.ElementsMatch(t, tt.wantIDs, idsOf(session))
		})
	}
}

func TestSelector_BuildSession_SkipsNewPoolWhenFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Due and mastered pools together exceed the total size.
	config := SessionConfig{TotalSize: 4, ReviewPercent: 100, KnownPercent: 50}
	source := mock_leitner.NewMockSource(ctrl)
	source.EXPECT().FetchDueWithScore(gomock.Any(), gomock.Any(), 4).Return(scoredCards(1, 4), nil)
	source.EXPECT().FetchMastered(gomock.Any(), 2).Return(plainCards(card.CategoryMastered, 5, 6), nil)

	session, err := NewSelector(source, config, rand.New(rand.NewPCG(3, 4))).BuildSession(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, session, 6)
}

func TestSelector_BuildSession_Errors(t *testing.T) {
	storeErr := errors.New("disk I/O error")
	config := SessionConfig{TotalSize: 10, ReviewPercent: 50, KnownPercent: 20}

	tests := []struct {
		name      string
		setupMock func(*mock_leitner.MockSource)
		wantErr   string
	}{
		{
			name: "due pool",
			setupMock: func(m *mock_leitner.MockSource) {
				m.EXPECT().FetchDueWithScore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storeErr)
			},
			wantErr: "FetchDueWithScore() > disk I/O error",
		},
		{
			name: "mastered pool",
			setupMock: func(m *mock_leitner.MockSource) {
				m.EXPECT().FetchDueWithScore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.EXPECT().FetchMastered(gomock.Any(), gomock.Any()).Return(nil, storeErr)
			},
			wantErr: "FetchMastered() > disk I/O error",
		},
		{
			name: "new pool",
			setupMock: func(m *mock_leitner.MockSource) {
				m.EXPECT().FetchDueWithScore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.EXPECT().FetchMastered(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.EXPECT().FetchNew(gomock.Any(), gomock.Any()).Return(nil, storeErr)
			},
			wantErr: "FetchNew() > disk I/O error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := mock_leitner.NewMockSource(ctrl)
			tt.setupMock(source)

			_, err := NewSelector(source, config, rand.New(rand.NewPCG(1, 2))).BuildSession(context.Background(), 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, storeErr)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestSelector_BuildSession_Shuffles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	config := SessionConfig{TotalSize: 30, ReviewPercent: 100, KnownPercent: 0}
	source := mock_leitner.NewMockSource(ctrl)
	source.EXPECT().FetchDueWithScore(gomock.Any(), gomock.Any(), 30).Return(scoredCards(1, 30), nil).Times(2)
	source.EXPECT().FetchMastered(gomock.Any(), 0).Return(nil, nil).Times(2)

	first, err := NewSelector(source, config, rand.New(rand.NewPCG(7, 7))).BuildSession(context.Background(), 0)
	require.NoError(t, err)
	second, err := NewSelector(source, config, rand.New(rand.NewPCG(7, 7))).BuildSession(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, idsOf(first), idsOf(second))
	var ordered []int64
	for id := int64(1); id <= 30; id++ {
		ordered = append(ordered, id)
	}
	assert.NotEqual(t, ordered, idsOf(first))
	assert.ElementsMatch(t, ordered, idsOf(first))
}
