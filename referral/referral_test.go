package referral

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/obidua/BIDUA-Hosting-sub003/portalapi"
)

func TestMapPayoutStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		backend string
		want    string
	}{
		{backend: "pending", want: "requested"},
		{backend: "processing", want: "under_review"},
		{backend: "completed", want: "paid"},
		{backend: "failed", want: "rejected"},
		{backend: "cancelled", want: "rejected"},
		{backend: "who-knows", want: "requested"},
		{backend: "", want: "requested"},
	}

	for _, tc := range cases {
		if got := mapPayoutStatus(tc.backend); got != tc.want {
			t.Errorf("mapPayoutStatus(%q) = %q, want %q", tc.backend, got, tc.want)
		}
	}
}

func TestNormalizeLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level int
		want  int
	}{
		{level: 1, want: 1},
		{level: 2, want: 2},
		{level: 3, want: 3},
		{level: 0, want: 1},
		{level: 7, want: 1},
		{level: -2, want: 1},
	}

	for _, tc := range cases {
		if got := normalizeLevel(tc.level); got != tc.want {
			t.Errorf("normalizeLevel(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestTaxPeriodQuarters(t *testing.T) {
	t.Parallel()

	// Каждый месяц года попадает в свой календарный квартал
	wantQuarters := []int{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4}
	months := []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}

	for i, m := range months {
		year, quarter := taxPeriod("2024-" + m + "-15T10:00:00Z")
		if year != 2024 {
			t.Errorf("month %s: year = %d, want 2024", m, year)
		}
		if quarter != wantQuarters[i] {
			t.Errorf("month %s: quarter = %d, want %d", m, quarter, wantQuarters[i])
		}
	}
}

func TestTaxPeriodUnparsable(t *testing.T) {
	t.Parallel()

	year, quarter := taxPeriod("вчера")
	if year != 0 || quarter != 0 {
		t.Fatalf("got %d/%d, want 0/0", year, quarter)
	}
}

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	source := &portalapi.MemoryTokenSource{}
	if err := source.SetToken(context.Background(), "test-token"); err != nil {
		t.Fatal(err)
	}
	client := portalapi.New(srv.URL, source, zap.NewNop())
	return NewService(client, zap.NewNop())
}

func TestStatsCoercesStringsAndNumbers(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/affiliate/stats" {
			t.Errorf("path = %s", r.URL.Path)
		}
		// Суммы вперемешку: строки, числа, мусор, null
		w.Write([]byte(`{
			"referral_code": "REF42",
			"total_referrals": "15",
			"level1_referrals": 10,
			"level2_referrals": "4",
			"level3_referrals": 1,
			"total_earnings": "2500.75",
			"available_balance": 1200,
			"total_withdrawn": null,
			"can_request_payout": true
		}`))
	}))

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.ReferralCode != "REF42" {
		t.Errorf("code = %q", stats.ReferralCode)
	}
	if stats.TotalReferrals != 15 || stats.Level1Referrals != 10 ||
		stats.Level2Referrals != 4 || stats.Level3Referrals != 1 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.TotalEarnings != 2500.75 {
		t.Errorf("earnings = %v", stats.TotalEarnings)
	}
	if stats.AvailableBalance != 1200 {
		t.Errorf("balance = %v", stats.AvailableBalance)
	}
	if stats.TotalWithdrawn != 0 {
		t.Errorf("withdrawn = %v, want 0", stats.TotalWithdrawn)
	}
	if !stats.CanRequestPayout {
		t.Errorf("can_request_payout = false")
	}
}

func TestEarningsNormalization(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "100" {
			t.Errorf("limit = %q, want 100", got)
		}
		w.Write([]byte(`[
			{
				"id": 1, "user_id": 5, "referral_user_id": 9,
				"referral_email": "friend@example.com",
				"order_id": 77, "level": 7,
				"commission_percentage": "10",
				"order_amount": "125.00",
				"commission_amount": 12.5,
				"created_at": "2024-03-15T10:00:00Z"
			},
			{
				"id": 2, "user_id": 5, "referral_user_id": 0,
				"referral_email": "other@example.com",
				"order_id": 78, "level": 2,
				"commission_percentage": 5,
				"order_amount": 200,
				"commission_amount": "10",
				"created_at": "2024-03-16T10:00:00Z"
			}
		]`))
	}))

	earnings, err := svc.Earnings(context.Background())
	if err != nil {
		t.Fatalf("earnings: %v", err)
	}
	if len(earnings) != 2 {
		t.Fatalf("len = %d", len(earnings))
	}

	first := earnings[0]
	if first.Level != 1 {
		t.Errorf("level 7 must normalize to 1, got %d", first.Level)
	}
	if first.ReferralUserID != "9" {
		t.Errorf("referral_user_id = %q, want 9", first.ReferralUserID)
	}
	if first.OrderAmount != 125 || first.CommissionAmount != 12.5 || first.CommissionPercentage != 10 {
		t.Errorf("amounts = %+v", first)
	}
	if first.IsRecurring {
		t.Errorf("is_recurring must always be false")
	}

	second := earnings[1]
	if second.Level != 2 {
		t.Errorf("level = %d, want 2", second.Level)
	}
	// Нет id реферала — подставляется email
	if second.ReferralUserID != "other@example.com" {
		t.Errorf("referral_user_id = %q, want email fallback", second.ReferralUserID)
	}
}

func TestPayoutsNormalization(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{
				"id": 9, "user_id": 5, "amount": "250.00",
				"status": "completed", "payment_method": "bank_transfer",
				"requested_at": "2024-05-10T12:00:00Z",
				"processed_at": "2024-05-12T12:00:00Z",
				"created_at": "2024-05-10T12:00:00Z"
			},
			{
				"id": 10, "user_id": 5, "amount": 100,
				"status": "cancelled", "payment_method": "upi",
				"requested_at": "2024-11-01T09:00:00Z",
				"created_at": "2024-11-01T09:00:00Z"
			}
		]`))
	}))

	payouts, err := svc.Payouts(context.Background())
	if err != nil {
		t.Fatalf("payouts: %v", err)
	}
	if len(payouts) != 2 {
		t.Fatalf("len = %d", len(payouts))
	}

	paid := payouts[0]
	if paid.PayoutNumber != "PAYOUT-9" {
		t.Errorf("payout_number = %q", paid.PayoutNumber)
	}
	if paid.Status != "paid" {
		t.Errorf("status = %q, want paid", paid.Status)
	}
	if paid.GrossAmount != 250 || paid.NetAmount != 250 {
		t.Errorf("gross/net = %v/%v, want 250/250", paid.GrossAmount, paid.NetAmount)
	}
	if paid.TDSAmount != 0 || paid.ServiceTaxAmount != 0 {
		t.Errorf("tax fields must be zero-filled")
	}
	if paid.TaxYear != 2024 || paid.TaxQuarter != 2 {
		t.Errorf("tax period = %d/%d, want 2024/2", paid.TaxYear, paid.TaxQuarter)
	}

	rejected := payouts[1]
	if rejected.Status != "rejected" {
		t.Errorf("cancelled must map to rejected, got %q", rejected.Status)
	}
	if rejected.TaxQuarter != 4 {
		t.Errorf("november quarter = %d, want 4", rejected.TaxQuarter)
	}
}

func TestRequestPayoutSendsDetailsAsJSONString(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		var body struct {
			Amount         float64 `json:"amount"`
			PaymentMethod  string  `json:"payment_method"`
			PaymentDetails string  `json:"payment_details"`
			Notes          string  `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		// Реквизиты — строка с JSON внутри, не вложенный объект
		var details map[string]string
		if err := json.Unmarshal([]byte(body.PaymentDetails), &details); err != nil {
			t.Errorf("payment_details is not embedded JSON: %v", err)
		}
		if details["upi_id"] != "user@bank" {
			t.Errorf("details = %v", details)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"id": 11, "user_id": 5, "amount": 500,
			"status": "pending", "payment_method": "upi",
			"requested_at": "2024-07-01T08:00:00Z",
			"created_at": "2024-07-01T08:00:00Z"
		}`))
	}))

	payout, err := svc.RequestPayout(context.Background(), 500, "upi",
		map[string]string{"upi_id": "user@bank"}, "first payout")
	if err != nil {
		t.Fatalf("request payout: %v", err)
	}
	if payout.Status != "requested" {
		t.Errorf("status = %q, want requested", payout.Status)
	}
	if payout.PayoutNumber != "PAYOUT-11" {
		t.Errorf("payout_number = %q", payout.PayoutNumber)
	}
	if payout.NetAmount != 500 {
		t.Errorf("net = %v", payout.NetAmount)
	}
	if payout.TaxQuarter != 3 {
		t.Errorf("quarter = %d, want 3", payout.TaxQuarter)
	}
}

func TestCommissionRulesFilterAndCoercion(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("product_type"); got != "vps" {
			t.Errorf("product_type = %q, want vps", got)
		}
		w.Write([]byte(`[
			{"id": 1, "level": 1, "product_type": "vps", "type": "percentage",
			 "value": "10.0", "name": "L1", "description": "", "is_active": true}
		]`))
	}))

	rules, err := svc.CommissionRules(context.Background(), "vps")
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	if len(rules) != 1 || rules[0].Value != 10 {
		t.Fatalf("rules = %+v", rules)
	}
}

func TestOfflinePropagates(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	source := &portalapi.MemoryTokenSource{}
	if err := source.SetToken(context.Background(), "test-token"); err != nil {
		t.Fatal(err)
	}
	svc := NewService(portalapi.New(srv.URL, source, zap.NewNop()), zap.NewNop())

	// Недоступный бэкенд не маскируется под "нет данных"
	if _, err := svc.Stats(context.Background()); !portalapi.IsOffline(err) {
		t.Fatalf("stats: expected offline error, got %v", err)
	}
	if _, err := svc.Earnings(context.Background()); !portalapi.IsOffline(err) {
		t.Fatalf("earnings: expected offline error, got %v", err)
	}
}
