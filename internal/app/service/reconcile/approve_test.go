package reconcile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agrofono/checkout/internal/models"
	"github.com/agrofono/checkout/pkg/types"
)

func seedSubscription(t *testing.T, fs *fakeStore, providerID string) {
	t.Helper()
	require.NoError(t, fs.CreateSubscription(context.Background(), &models.Subscription{
		ID:             "local-1",
		SubscriptionID: providerID,
		Email:          "a@example.com",
		Nombre:         "Ana",
		Telefono:       "555",
		DNI:            "123",
		Price:          "100",
		Status:         types.SubscriptionStatusPending,
	}))
}

func subscriptionEvent(id string) *Event {
	evt := &Event{Type: types.EventTypeSubscriptionPreapproval}
	evt.Data.ID = resourceID(id)
	return evt
}

func TestHandleSubscriptionEvent_ApprovesAndProvisions(t *testing.T) {
	fs := newFakeStore()
	seedSubscription(t, fs, "sub-1")
	mailer := newStubMailer()
	e := newTestEngine(fs, &stubProvider{preapprovalStatuses: []string{"authorized"}}, mailer)

	require.NoError(t, e.HandleSubscriptionEvent(context.Background(), subscriptionEvent("sub-1")))

	sub, err := fs.FindSubscriptionByProviderID(context.Background(), "sub-1")
	require.NoError(t, err)
	require.Equal(t, types.SubscriptionStatusApproved, sub.Status)

	account, err := fs.FindAccountBySubscriptionID(context.Background(), "sub-1")
	require.NoError(t, err)
	require.Equal(t, "123", account.DNI)
	require.False(t, account.Active)

	select {
	case body := <-mailer.sent:
		require.Equal(t, "Se ha creado un nuevo usuario con DNI: 123.", body)
	case <-time.After(time.Second):
		t.Fatal("ops mail was not sent")
	}
}

func TestHandleSubscriptionEvent_RejectsWrongType(t *testing.T) {
	e := newTestEngine(newFakeStore(), &stubProvider{}, nil)
	evt := &Event{Type: "payment"}
	evt.Data.ID = "sub-1"
	require.ErrorIs(t, e.HandleSubscriptionEvent(context.Background(), evt), ErrBadEvent)
}

func TestHandleSubscriptionEvent_NotAuthorizedIsNoop(t *testing.T) {
	fs := newFakeStore()
	seedSubscription(t, fs, "sub-1")
	e := newTestEngine(fs, &stubProvider{preapprovalStatuses: []string{"pending"}}, nil)

	require.NoError(t, e.HandleSubscriptionEvent(context.Background(), subscriptionEvent("sub-1")))

	sub, _ := fs.FindSubscriptionByProviderID(context.Background(), "sub-1")
	require.Equal(t, types.SubscriptionStatusPending, sub.Status)
	require.Empty(t, fs.accounts)
}

func TestHandleSubscriptionEvent_MissingRecordIsNoop(t *testing.T) {
	fs := newFakeStore()
	e := newTestEngine(fs, &stubProvider{preapprovalStatuses: []string{"authorized"}}, nil)

	require.NoError(t, e.HandleSubscriptionEvent(context.Background(), subscriptionEvent("sub-1")))
	require.Empty(t, fs.accounts)
}

func TestApproveSubscription_ExactlyOnceUnderConcurrency(t *testing.T) {
	fs := newFakeStore()
	seedSubscription(t, fs, "sub-1")
	mailer := newStubMailer()
	e := newTestEngine(fs, &stubProvider{preapprovalStatuses: []string{"authorized"}}, mailer)

	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, e.HandleSubscriptionEvent(context.Background(), subscriptionEvent("sub-1")))
		}()
	}
	wg.Wait()

	require.Len(t, fs.accounts, 1)

	select {
	case <-mailer.sent:
	case <-time.After(time.Second):
		t.Fatal("ops mail was not sent")
	}
	select {
	case <-mailer.sent:
		t.Fatal("ops mail sent more than once")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestApproveSubscription_ReplayAfterApprovalDoesNotReprovision(t *testing.T) {
	fs := newFakeStore()
	seedSubscription(t, fs, "sub-1")
	mailer := newStubMailer()
	e := newTestEngine(fs, &stubProvider{preapprovalStatuses: []string{"authorized"}}, mailer)

	require.NoError(t, e.HandleSubscriptionEvent(context.Background(), subscriptionEvent("sub-1")))
	<-mailer.sent

	require.NoError(t, e.HandleSubscriptionEvent(context.Background(), subscriptionEvent("sub-1")))
	require.Len(t, fs.accounts, 1)
	select {
	case <-mailer.sent:
		t.Fatal("replay sent a second ops mail")
	case <-time.After(50 * time.Millisecond):
	}
}
