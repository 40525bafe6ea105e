package order

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Step is the position in the four-step order dialog
type Step int

const (
	// StepProduct shows the product snapshot being ordered
	StepProduct Step = iota + 1
	// StepCustomer collects name and phone number
	StepCustomer
	// StepDelivery collects wilaya, commune and delivery method
	StepDelivery
	// StepConfirm shows the summary; the only step where submit is available
	StepConfirm
)

// String returns a short name for the step
func (s Step) String() string {
	switch s {
	case StepProduct:
		return "product"
	case StepCustomer:
		return "customer"
	case StepDelivery:
		return "delivery"
	case StepConfirm:
		return "confirm"
	}
	return "unknown"
}

// SubmissionState is the lifecycle of the outbound create-order call.
// A single enum instead of separate loading/success flags rules out
// impossible combinations.
type SubmissionState string

const (
	SubmissionIdle      SubmissionState = "IDLE"
	SubmissionInFlight  SubmissionState = "SUBMITTING"
	SubmissionSucceeded SubmissionState = "SUCCEEDED"
	SubmissionFailed    SubmissionState = "FAILED"
)

// SubmissionResult is the outcome of one submit attempt
type SubmissionResult struct {
	Success bool
	OrderID string
	Reason  string
}

// Shopper-facing submission failure messages
const (
	MsgSubmitFailed     = "فشل في إرسال الطلب. يرجى المحاولة مرة أخرى / Order submission failed. Please try again."
	MsgSubmitInFlight   = "الطلب قيد الإرسال / Submission already in progress"
	MsgSubmitNotAtStep  = "submit is only available at the confirmation step"
	MsgValidationFailed = "يرجى تصحيح الحقول المحددة / Please correct the highlighted fields"
)

// SubmitFunc hands a validated draft to the order store and returns the
// created record id. An empty id with a nil error is tolerated; the intake
// synthesizes a display-only placeholder.
type SubmitFunc func(ctx context.Context, draft Draft) (orderID string, err error)

// Intake drives one checkout session: a four-step navigation state machine
// over a Draft, ending in a single best-effort submission. The draft is
// owned exclusively by its intake; there is no cross-session sharing.
type Intake struct {
	mu     sync.Mutex
	draft  Draft
	step   Step
	state  SubmissionState
	errs   ValidationErrorSet
	result *SubmissionResult
}

// NewIntake starts a checkout session at the product step with an empty
// draft carrying the product snapshot
func NewIntake(snapshot ProductSnapshot) *Intake {
	return &Intake{
		draft: NewDraft(snapshot),
		step:  StepProduct,
		state: SubmissionIdle,
		errs:  ValidationErrorSet{},
	}
}

// Step returns the current dialog step
func (i *Intake) Step() Step {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.step
}

// State returns the current submission state
func (i *Intake) State() SubmissionState {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// Draft returns a copy of the current draft
func (i *Intake) Draft() Draft {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.draft
}

// Errors returns the validation errors from the last submit attempt
func (i *Intake) Errors() ValidationErrorSet {
	i.mu.Lock()
	defer i.mu.Unlock()
	errs := make(ValidationErrorSet, len(i.errs))
	for k, v := range i.errs {
		errs[k] = v
	}
	return errs
}

// Result returns the outcome of the last completed submit attempt, if any
func (i *Intake) Result() *SubmissionResult {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.result
}

// Next advances one step. A no-op at the confirmation step: only submit is
// valid there. Field validity does not gate advancing; validation runs once,
// at final submit.
func (i *Intake) Next() Step {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.step < StepConfirm && i.state != SubmissionSucceeded {
		i.step++
	}
	return i.step
}

// Prev goes back one step. A no-op at the product step.
func (i *Intake) Prev() Step {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.step > StepProduct && i.state != SubmissionSucceeded {
		i.step--
	}
	return i.step
}

// Field setters clear the field's stale validation error as the shopper
// corrects it, mirroring the dialog behavior.

// SetCustomerName records the shopper's name
func (i *Intake) SetCustomerName(name string) { i.setField(FieldCustomerName, func(d *Draft) { d.CustomerName = name }) }

// SetPhoneNumber records the contact phone number
func (i *Intake) SetPhoneNumber(number string) { i.setField(FieldPhoneNumber, func(d *Draft) { d.PhoneNumber = number }) }

// SetWilaya records the delivery region
func (i *Intake) SetWilaya(wilaya string) { i.setField(FieldWilaya, func(d *Draft) { d.Wilaya = wilaya }) }

// SetCommune records the delivery sub-region
func (i *Intake) SetCommune(commune string) { i.setField(FieldCommune, func(d *Draft) { d.Commune = commune }) }

// SetSize records the chosen garment size
func (i *Intake) SetSize(size string) { i.setField(FieldSize, func(d *Draft) { d.Size = size }) }

// SetDeliveryType records the delivery method
func (i *Intake) SetDeliveryType(t DeliveryType) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.draft.DeliveryType = t
}

func (i *Intake) setField(field string, apply func(*Draft)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	apply(&i.draft)
	delete(i.errs, field)
}

// Submit validates the whole draft and, if it passes, issues exactly one
// outbound create-order call. While a call is in flight further submits are
// rejected without touching the network; that disable guard is the only
// concurrency safeguard the session needs. On failure the session stays at
// the confirmation step and the guard is released so the shopper can retry
// manually.
func (i *Intake) Submit(ctx context.Context, submit SubmitFunc) SubmissionResult {
	i.mu.Lock()

	if i.state == SubmissionSucceeded {
		res := *i.result
		i.mu.Unlock()
		return res
	}
	if i.step != StepConfirm {
		i.mu.Unlock()
		return SubmissionResult{Success: false, Reason: MsgSubmitNotAtStep}
	}
	if i.state == SubmissionInFlight {
		i.mu.Unlock()
		return SubmissionResult{Success: false, Reason: MsgSubmitInFlight}
	}

	errs := i.draft.Validate()
	i.errs = errs
	if !errs.IsEmpty() {
		i.mu.Unlock()
		return SubmissionResult{Success: false, Reason: MsgValidationFailed}
	}

	i.state = SubmissionInFlight
	draft := i.draft
	i.mu.Unlock()

	orderID, err := submit(ctx, draft)

	i.mu.Lock()
	defer i.mu.Unlock()

	if err != nil {
		i.state = SubmissionFailed
		res := SubmissionResult{Success: false, Reason: MsgSubmitFailed}
		i.result = &res
		return res
	}

	if orderID == "" {
		orderID = PlaceholderOrderID()
	}

	i.state = SubmissionSucceeded
	i.draft = NewDraft(i.draft.Product)
	res := SubmissionResult{Success: true, OrderID: orderID}
	i.result = &res
	return res
}

// PlaceholderOrderID synthesizes a display-only order reference for the rare
// case where the record store accepted the write but returned no id. Never
// used for reconciliation.
func PlaceholderOrderID() string {
	id := uuid.New().String()
	return "web-" + strings.Split(id, "-")[0]
}
