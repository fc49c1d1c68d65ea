package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/agrofono/checkout/internal/app/service/store"
	"github.com/agrofono/checkout/internal/models"
	"github.com/agrofono/checkout/pkg/logctx"
	"github.com/agrofono/checkout/pkg/tool"
	"github.com/agrofono/checkout/pkg/types"
)

// keyedMutex serializes work per subscription id. Webhook delivery and a
// running poll iteration for the same id must not interleave inside the
// approval handler.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	if l, ok := k.locks[key]; ok {
		return l
	}
	l := &sync.Mutex{}
	k.locks[key] = l
	return l
}

// approveSubscription is the shared approval handler, reachable from the
// webhook path and from the polling loop. It re-fetches the authoritative
// preapproval, transitions the stored record pending→approved at most once,
// and provisions the account only for the caller that won the transition.
//
// A non-authorized status and a missing stored record are normal "not yet"
// outcomes, not failures.
func (e *Engine) approveSubscription(ctx context.Context, subscriptionID string) error {
	lock := e.approveLocks.get(subscriptionID)
	lock.Lock()
	defer lock.Unlock()

	log := logctx.FromCtx(ctx, e.log)

	pre, err := e.provider.GetPreapproval(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to fetch preapproval %s: %w", subscriptionID, err)
	}
	if pre.Status != types.PreapprovalStatusAuthorized {
		log.Infow("subscription_not_authorized_yet", "subscription_id", subscriptionID, "status", pre.Status)
		return nil
	}

	sub, err := e.store.FindSubscriptionByProviderID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Cannot provision without the stored contact data.
			log.Warnw("subscription_record_missing", "subscription_id", subscriptionID)
			return nil
		}
		return err
	}

	won, err := e.store.ApproveSubscription(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if !won {
		log.Infow("subscription_already_approved", "subscription_id", subscriptionID)
		return nil
	}

	account := &models.Account{
		ID:             tool.GenerateUUIDV7(),
		DNI:            sub.DNI,
		Nombre:         sub.Nombre,
		Telefono:       sub.Telefono,
		SubscriptionID: subscriptionID,
		Active:         false,
	}
	created, err := e.store.CreateAccount(ctx, account)
	if err != nil {
		return err
	}
	if !created {
		log.Infow("account_already_provisioned", "subscription_id", subscriptionID)
		return nil
	}

	log.Infow("account_provisioned", "account_id", account.ID, "subscription_id", subscriptionID)
	e.notifyAccountCreated(account)
	return nil
}

// notifyAccountCreated fires the ops email without blocking the caller;
// send failures are logged and never propagated.
func (e *Engine) notifyAccountCreated(account *models.Account) {
	if e.mailer == nil || e.cfg.SMTP.OpsAddress == "" {
		return
	}
	go func() {
		body := fmt.Sprintf("Se ha creado un nuevo usuario con DNI: %s.", account.DNI)
		if err := e.mailer.Send(e.cfg.SMTP.OpsAddress, "Nuevo Usuario Creado", body); err != nil {
			e.log.Errorw("ops_mail_failed", "account_id", account.ID, "err", err)
		}
	}()
}
