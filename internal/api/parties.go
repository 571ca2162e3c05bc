package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListParties returns a page of parties.
func (c *Client) ListParties(ctx context.Context, params ListParams) (*List[Party], error) {
	var result List[Party]
	if err := c.do(ctx, http.MethodGet, "/parties", listQuery(params), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetParty fetches one party by id.
func (c *Client) GetParty(ctx context.Context, id int) (*Party, error) {
	var party Party
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/parties/%d", id), nil, nil, &party); err != nil {
		return nil, err
	}
	return &party, nil
}

// GetPartyBalance fetches the running balance for a party.
func (c *Client) GetPartyBalance(ctx context.Context, id int) (*PartyBalance, error) {
	var balance PartyBalance
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/parties/%d/balance", id), nil, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// CreateParty creates a party and returns the stored record.
func (c *Client) CreateParty(ctx context.Context, party Party) (*Party, error) {
	var created Party
	if err := c.do(ctx, http.MethodPost, "/parties", nil, party, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateParty replaces a party's fields.
func (c *Client) UpdateParty(ctx context.Context, id int, party Party) (*Party, error) {
	var updated Party
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/parties/%d", id), nil, party, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteParty removes a party.
func (c *Client) DeleteParty(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/parties/%d", id), nil, nil, nil)
}

// ListPartyVehicles returns the vehicles registered to a party.
func (c *Client) ListPartyVehicles(ctx context.Context, partyID int, params ListParams) (*List[Vehicle], error) {
	var result List[Vehicle]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/parties/%d/vehicles", partyID), listQuery(params), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateVehicle registers a vehicle under a party.
func (c *Client) CreateVehicle(ctx context.Context, vehicle Vehicle) (*Vehicle, error) {
	var created Vehicle
	if err := c.do(ctx, http.MethodPost, "/parties/vehicles", nil, vehicle, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateVehicle replaces a vehicle record.
func (c *Client) UpdateVehicle(ctx context.Context, id int, vehicle Vehicle) (*Vehicle, error) {
	var updated Vehicle
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/parties/vehicles/%d", id), nil, vehicle, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteVehicle removes a vehicle.
func (c *Client) DeleteVehicle(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/parties/vehicles/%d", id), nil, nil, nil)
}
