package response

import (
	"encoding/json"
	"testing"

	"clictopay_gateway/internal/domain/entities"
	"clictopay_gateway/pkg/clictopay"
)

func TestFromURLResponse(t *testing.T) {
	res := FromURLResponse(entities.EnvironmentTest, &clictopay.URLResponse{OrderID: "order123", FormURL: "https://test.clictopay.com/form"})
	if res.Environment != "test" || res.OrderID != "order123" || res.FormURL != "https://test.clictopay.com/form" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromResponse(t *testing.T) {
	res := FromResponse(entities.EnvironmentLive, entities.OperationCancel, &clictopay.Response{ErrorCode: clictopay.Int(0), ErrorMessage: "Success"})
	if !res.Success || res.ErrorCode != 0 || res.ErrorMessage != "Success" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Environment != "live" || res.Operation != "cancel" {
		t.Fatalf("unexpected labels: %+v", res)
	}

	res = FromResponse(entities.EnvironmentTest, entities.OperationDeposit, &clictopay.Response{})
	if !res.Success || res.ErrorCode != 0 {
		t.Fatalf("expected absent error code to be ok: %+v", res)
	}
}

func TestFromStatusResponse(t *testing.T) {
	status := clictopay.OrderStatusDeposited
	res := FromStatusResponse(entities.EnvironmentTest, &clictopay.StatusResponse{OrderStatus: &status, Pan: "411111**1111"})
	if res.Status != "deposited" || !res.Paid {
		t.Fatalf("unexpected response: %+v", res)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	order := body["order"].(map[string]any)
	if order["OrderStatus"] != float64(2) || order["Pan"] != "411111**1111" {
		t.Fatalf("unexpected body: %s", raw)
	}

	res = FromStatusResponse(entities.EnvironmentTest, &clictopay.StatusResponse{})
	if res.Status != "" || res.Paid {
		t.Fatalf("expected unknown status: %+v", res)
	}
}

func TestFromExtendedStatusResponse(t *testing.T) {
	status := clictopay.OrderStatusPreAuthorized
	res := FromExtendedStatusResponse(entities.EnvironmentTest, &clictopay.ExtendedStatusResponse{OrderStatus: &status, OrderNumber: "12345"})
	if res.Status != "pre_authorized" || res.Paid || res.Order.OrderNumber != "12345" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromEnvironments(t *testing.T) {
	res := FromEnvironments(entities.EnvironmentLive, []entities.Environment{entities.EnvironmentLive, entities.EnvironmentTest})
	if res.Mode != "live" || len(res.Environments) != 2 || res.Environments[1] != "test" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
