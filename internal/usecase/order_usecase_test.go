package usecase

import (
	"context"
	"errors"
	"testing"

	"rrportal/internal/domain/entities"
	mock_interfaces "rrportal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_ListByUser(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.ListByUser(context.Background(), " ", "", "")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().ListByUserID(gomock.Any(), "u1").Return(nil, errors.New("query failed"))

		uc := NewOrderUseCase(repo)
		if _, err := uc.ListByUser(context.Background(), "u1", "", ""); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("derives display statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.Order{
			{ID: "o1", RawStatus: entities.OrderRawStatusDelivered, ValidTill: "2020-01-01"},
			{ID: "o2", RawStatus: entities.OrderRawStatusInProgress, ValidTill: "2020-01-01"},
			{ID: "o3", RawStatus: entities.OrderRawStatusInProgress, ValidTill: "2099-01-01"},
		}, nil)

		uc := NewOrderUseCase(repo)
		views, err := uc.ListByUser(context.Background(), "u1", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 3 {
			t.Fatalf("len = %d, want 3", len(views))
		}
		want := []entities.OrderDisplayStatus{
			entities.OrderDisplayValid,
			entities.OrderDisplayExpired,
			entities.OrderDisplayPending,
		}
		for i, w := range want {
			if views[i].DisplayStatus != w {
				t.Fatalf("views[%d].DisplayStatus = %s, want %s", i, views[i].DisplayStatus, w)
			}
		}
	})

	t.Run("status filter matches derived status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.Order{
			{ID: "o1", RawStatus: entities.OrderRawStatusDelivered},
			{ID: "o2", RawStatus: entities.OrderRawStatusInProgress, ValidTill: "2020-01-01"},
		}, nil)

		uc := NewOrderUseCase(repo)
		views, err := uc.ListByUser(context.Background(), "u1", "expired", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 1 || views[0].ID != "o2" {
			t.Fatalf("views = %+v, want only o2", views)
		}
	})

	t.Run("session filter narrows to one checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.Order{
			{ID: "o1", SessionID: "s1"},
			{ID: "o2", SessionID: "s2"},
			{ID: "o3", SessionID: "s1"},
		}, nil)

		uc := NewOrderUseCase(repo)
		views, err := uc.ListByUser(context.Background(), "u1", "", "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 2 {
			t.Fatalf("len = %d, want 2", len(views))
		}
		for _, v := range views {
			if v.SessionID != "s1" {
				t.Fatalf("session id = %q, want s1", v.SessionID)
			}
		}
	})
}
