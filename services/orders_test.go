package services

import (
	"strings"
	"testing"
	"time"

	"foodly-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type ordersFixture struct {
	db      *gorm.DB
	catalog *Catalog
	zones   *Zones
	orders  *Orders
}

// 2026-03-02 is a Monday; default hours have Monday open 09:00-22:00.
func mondayNoon() time.Time {
	return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
}

func newOrdersFixture(t *testing.T) *ordersFixture {
	t.Helper()
	db := newTestDB(t)
	return &ordersFixture{
		db:      db,
		catalog: NewCatalog(db),
		zones:   NewZones(db),
		orders:  NewOrders(db).WithClock(mondayNoon),
	}
}

func (f *ordersFixture) seedUserWithAddress(t *testing.T, postalCode string) (*models.User, *models.UserAddress) {
	t.Helper()
	user := models.User{Name: "Pat", Email: "pat@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	require.NoError(t, f.db.Create(&user).Error)
	addr := models.UserAddress{
		UserID: user.ID, Label: "Home", AddressLine1: "1 Main St",
		City: "Springfield", PostalCode: postalCode, IsDefault: true,
	}
	require.NoError(t, f.db.Create(&addr).Error)
	return &user, &addr
}

func TestCreateOrderStartsPendingWithSnapshots(t *testing.T) {
	f := newOrdersFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Ramen", Price: 12.00, IsAvailable: true, LowStockThreshold: 5})
	seedZone(t, f.zones, models.DeliveryZone{Name: "Central", DeliveryFee: 3.00, PostalCodes: "10001", IsActive: true})
	user, addr := f.seedUserWithAddress(t, "10001")

	order, err := f.orders.Create(CreateOrderInput{
		Items:             []RequestedItem{{MenuItemID: item.ID, Quantity: 2}},
		UserID:            &user.ID,
		DeliveryAddressID: &addr.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"), order.OrderNumber)
	assert.Len(t, order.OrderNumber, len("ORD-")+8)
	assert.Equal(t, 24.00, order.Subtotal)
	assert.Equal(t, 3.00, order.DeliveryFee)
	assert.Equal(t, 27.00, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Ramen", order.Items[0].Name)
	assert.Equal(t, 12.00, order.Items[0].Price)
	require.NotNil(t, order.DeliveryAddressSnapshot)
	assert.Equal(t, "1 Main St", order.DeliveryAddressSnapshot.AddressLine1)
	require.NotNil(t, order.DeliveryZoneID)
}

func TestOrderSnapshotSurvivesCatalogEdits(t *testing.T) {
	f := newOrdersFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Ramen", Price: 12.00, IsAvailable: true, LowStockThreshold: 5})

	order, err := f.orders.Create(CreateOrderInput{
		Items: []RequestedItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.catalog.UpdateItem(item.ID, ItemUpdate{Name: strPtr("Deluxe Ramen"), Price: floatPtr(15.00)})
	require.NoError(t, err)

	reloaded, err := f.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ramen", reloaded.Items[0].Name)
	assert.Equal(t, 12.00, reloaded.Items[0].Price)
	assert.Equal(t, 12.00, reloaded.TotalAmount)
}

func TestCreateOrderDoesNotTouchStock(t *testing.T) {
	f := newOrdersFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{
		Name: "Limited", Price: 5.00, IsAvailable: true, LowStockThreshold: 5, StockQuantity: intPtr(10),
	})

	_, err := f.orders.Create(CreateOrderInput{Items: []RequestedItem{{MenuItemID: item.ID, Quantity: 3}}})
	require.NoError(t, err)

	after, err := f.catalog.GetItem(item.ID)
	require.NoError(t, err)
	require.NotNil(t, after.StockQuantity)
	assert.Equal(t, 10, *after.StockQuantity)
}

func TestCreateOrderGatesOnOpeningHours(t *testing.T) {
	f := newOrdersFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Ramen", Price: 12.00, IsAvailable: true, LowStockThreshold: 5})
	// Default Monday hours end at 22:00.
	f.orders.WithClock(func() time.Time { return time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC) })

	_, err := f.orders.Create(CreateOrderInput{Items: []RequestedItem{{MenuItemID: item.ID, Quantity: 1}}})
	assert.ErrorIs(t, err, ErrRestaurantClosed)

	// Staff override for phone orders keyed in after hours.
	order, err := f.orders.Create(CreateOrderInput{
		Items:             []RequestedItem{{MenuItemID: item.ID, Quantity: 1}},
		IgnoreClosedHours: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, order.Status)
}

func TestCreateOrderEnforcesStoreMinimum(t *testing.T) {
	f := newOrdersFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Snack", Price: 4.00, IsAvailable: true, LowStockThreshold: 5})
	_, err := NewSettings(f.db).Update(SettingUpdate{MinimumOrder: floatPtr(15)})
	require.NoError(t, err)

	_, err = f.orders.Create(CreateOrderInput{Items: []RequestedItem{{MenuItemID: item.ID, Quantity: 1}}})
	assert.ErrorIs(t, err, ErrMinimumNotMet)

	_, err = f.orders.Create(CreateOrderInput{Items: []RequestedItem{{MenuItemID: item.ID, Quantity: 4}}})
	assert.NoError(t, err)
}

func TestCreateOrderEnforcesZoneMinimum(t *testing.T) {
	f := newOrdersFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Snack", Price: 4.00, IsAvailable: true, LowStockThreshold: 5})
	seedZone(t, f.zones, models.DeliveryZone{
		Name: "Far", DeliveryFee: 6.00, PostalCodes: "70001", IsActive: true, MinimumOrder: floatPtr(25),
	})
	user, addr := f.seedUserWithAddress(t, "70001")

	_, err := f.orders.Create(CreateOrderInput{
		Items:             []RequestedItem{{MenuItemID: item.ID, Quantity: 2}},
		UserID:            &user.ID,
		DeliveryAddressID: &addr.ID,
	})
	assert.ErrorIs(t, err, ErrMinimumNotMet)
}

func TestCreateOrderRejectsForeignAddress(t *testing.T) {
	f := newOrdersFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Ramen", Price: 12.00, IsAvailable: true, LowStockThreshold: 5})
	_, addr := f.seedUserWithAddress(t, "10001")
	other := models.User{Name: "Sam", Email: "sam@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	require.NoError(t, f.db.Create(&other).Error)

	_, err := f.orders.Create(CreateOrderInput{
		Items:             []RequestedItem{{MenuItemID: item.ID, Quantity: 1}},
		UserID:            &other.ID,
		DeliveryAddressID: &addr.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrderTotalOverride(t *testing.T) {
	f := newOrdersFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Ramen", Price: 12.00, IsAvailable: true, LowStockThreshold: 5})

	order, err := f.orders.Create(CreateOrderInput{
		Items:       []RequestedItem{{MenuItemID: item.ID, Quantity: 1}},
		TotalAmount: floatPtr(10.00),
	})
	require.NoError(t, err)
	assert.Equal(t, 10.00, order.TotalAmount)
	// The computed parts keep their real values.
	assert.Equal(t, 12.00, order.Subtotal)
}

func (f *ordersFixture) placeSimpleOrder(t *testing.T) *models.Order {
	t.Helper()
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Ramen", Price: 12.00, IsAvailable: true, LowStockThreshold: 5})
	order, err := f.orders.Create(CreateOrderInput{Items: []RequestedItem{{MenuItemID: item.ID, Quantity: 1}}})
	require.NoError(t, err)
	return order
}

func TestOrderWalksFullLifecycle(t *testing.T) {
	f := newOrdersFixture(t)
	order := f.placeSimpleOrder(t)

	for _, next := range []models.OrderStatus{
		models.StatusAccepted,
		models.StatusCooking,
		models.StatusReady,
		models.StatusOutForDelivery,
		models.StatusCompleted,
	} {
		updated, err := f.orders.UpdateStatus(order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}
}

func TestOrderRejectsSkippedStatus(t *testing.T) {
	f := newOrdersFixture(t)
	order := f.placeSimpleOrder(t)

	_, err := f.orders.UpdateStatus(order.ID, models.StatusReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Failed transition leaves the order untouched.
	reloaded, err := f.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reloaded.Status)
}

func TestOrderSameStatusIsNoOp(t *testing.T) {
	f := newOrdersFixture(t)
	order := f.placeSimpleOrder(t)

	updated, err := f.orders.UpdateStatus(order.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestOrderCancelAndTerminalLock(t *testing.T) {
	f := newOrdersFixture(t)
	order := f.placeSimpleOrder(t)

	_, err := f.orders.UpdateStatus(order.ID, models.StatusAccepted)
	require.NoError(t, err)
	cancelled, err := f.orders.UpdateStatus(order.ID, models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// Terminal states accept no further transitions.
	_, err = f.orders.UpdateStatus(order.ID, models.StatusAccepted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestForceStatusSkipsValidation(t *testing.T) {
	f := newOrdersFixture(t)
	order := f.placeSimpleOrder(t)

	forced, err := f.orders.ForceStatus(order.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, forced.Status)

	// Even forcing requires a known status.
	_, err = f.orders.ForceStatus(order.ID, models.OrderStatus("SHIPPED"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestFindReadyForDeliveryIsFifo(t *testing.T) {
	f := newOrdersFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Ramen", Price: 12.00, IsAvailable: true, LowStockThreshold: 5})

	var ids []uint
	for i := 0; i < 3; i++ {
		order, err := f.orders.Create(CreateOrderInput{Items: []RequestedItem{{MenuItemID: item.ID, Quantity: 1}}})
		require.NoError(t, err)
		// Space the rows out so created_at ordering is unambiguous.
		require.NoError(t, f.db.Model(order).Update("created_at", mondayNoon().Add(time.Duration(i)*time.Minute)).Error)
		ids = append(ids, order.ID)
	}
	for _, id := range ids {
		_, err := f.orders.ForceStatus(id, models.StatusReady)
		require.NoError(t, err)
	}

	ready, err := f.orders.FindReadyForDelivery()
	require.NoError(t, err)
	require.Len(t, ready, 3)
	assert.Equal(t, ids[0], ready[0].ID)
	assert.Equal(t, ids[2], ready[2].ID)
}

func TestListFiltersByStatus(t *testing.T) {
	f := newOrdersFixture(t)
	first := f.placeSimpleOrder(t)
	second := f.placeSimpleOrder(t)
	_, err := f.orders.UpdateStatus(second.ID, models.StatusAccepted)
	require.NoError(t, err)

	pending, err := f.orders.List(models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	all, err := f.orders.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteOrderRemovesLineItems(t *testing.T) {
	f := newOrdersFixture(t)
	order := f.placeSimpleOrder(t)

	require.NoError(t, f.orders.Delete(order.ID))
	_, err := f.orders.Get(order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, f.db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	assert.ErrorIs(t, f.orders.Delete(order.ID), ErrNotFound)
}
