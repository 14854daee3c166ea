package seed

import (
	"fmt"
	"math"
	"time"

	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/internal/app/repository"
	"github.com/gosimple/slug"
)

// uniqueSlug derives a slug from the name and disambiguates run-local
// collisions with a numeric suffix. Suffixed slugs are recorded too, so a
// name that naturally slugs to "base-2" cannot collide with a generated one.
func uniqueSlug(used map[string]int, name string) string {
	base := slug.Make(name)
	used[base]++
	if used[base] == 1 {
		return base
	}
	for {
		candidate := fmt.Sprintf("%s-%d", base, used[base])
		if used[candidate] == 0 {
			used[candidate] = 1
			return candidate
		}
		used[base]++
	}
}

// seedCategories writes main categories first, flushes so their ids exist,
// then writes subcategories parented uniformly at random on the mains. The
// returned id slice is only populated when pool caching is on.
func (s *Seeder) seedCategories() (int, []uint, error) {
	usedSlugs := make(map[string]int)
	var mainIDs []uint
	var harvested []uint

	writer := newBatchWriter(s.batchSize, func(batch []model.Category) error {
		if err := s.repos.Categories.BulkCreate(batch, s.batchSize); err != nil {
			return err
		}
		for i := range batch {
			if batch[i].ParentCategoryID == nil {
				mainIDs = append(mainIDs, batch[i].ID)
			}
			if s.cachePools {
				harvested = append(harvested, batch[i].ID)
			}
		}
		return nil
	})

	for i := 0; i < mainCategoryCount; i++ {
		name := s.faker.MainCategoryName()
		category := model.Category{
			Name:        name,
			Slug:        uniqueSlug(usedSlugs, name),
			Description: fmt.Sprintf("Everything in %s", name),
		}
		if err := writer.Add(category); err != nil {
			return writer.Written(), nil, err
		}
	}
	// Mains must be stored before subcategories can reference them.
	if err := writer.Flush(); err != nil {
		return writer.Written(), nil, err
	}

	for i := 0; i < subCategoryCount && len(mainIDs) > 0; i++ {
		name := s.faker.SubCategoryName()
		parentID := mainIDs[s.faker.IntBetween(0, len(mainIDs)-1)]
		category := model.Category{
			Name:             name,
			Slug:             uniqueSlug(usedSlugs, name),
			Description:      fmt.Sprintf("Curated %s", name),
			ParentCategoryID: &parentID,
		}
		if err := writer.Add(category); err != nil {
			return writer.Written(), nil, err
		}
	}
	if err := writer.Flush(); err != nil {
		return writer.Written(), nil, err
	}
	return writer.Written(), harvested, nil
}

// productPools carries the projections later stages need when pool caching
// is on; with caching off they are re-read from storage instead.
type productPools struct {
	prices    []repository.ProductPrice
	activeIDs []uint
}

// seedProducts emits perCategory products for every category id, assigning
// categories uniformly and retrying SKU collisions within a bounded budget.
func (s *Seeder) seedProducts(perCategory int, categoryIDs []uint) (int, *productPools, error) {
	pools := &productPools{}
	if len(categoryIDs) == 0 || perCategory == 0 {
		return 0, pools, nil
	}

	usedSKUs := make(map[string]struct{})
	writer := newBatchWriter(s.batchSize, func(batch []model.Product) error {
		if err := s.repos.Products.BulkCreate(batch, s.batchSize); err != nil {
			return err
		}
		if s.cachePools {
			for i := range batch {
				pools.prices = append(pools.prices, repository.ProductPrice{
					ID:    batch[i].ID,
					Price: batch[i].Price,
				})
				if batch[i].IsActive {
					pools.activeIDs = append(pools.activeIDs, batch[i].ID)
				}
			}
		}
		return nil
	})

	count := perCategory * len(categoryIDs)
	for i := 0; i < count; i++ {
		sku, err := generateUnique(usedSKUs, maxUniqueAttempts, s.faker.SKU)
		if err != nil {
			return writer.Written(), pools, err
		}
		name := s.faker.ProductName()
		price := s.faker.PriceBetween(5, 5000)
		product := model.Product{
			Name:          name,
			SKU:           sku,
			Description:   fmt.Sprintf("%s for everyday use", name),
			Price:         price,
			Cost:          s.faker.PriceBetween(price*0.4, price*0.8),
			StockQuantity: s.faker.IntBetween(0, 500),
			CategoryID:    categoryIDs[s.faker.IntBetween(0, len(categoryIDs)-1)],
			IsActive:      s.faker.Bool(activeProductShare),
			Rating:        0, // advisory until reviews exist
			ReviewCount:   0,
		}
		if err := writer.Add(product); err != nil {
			return writer.Written(), pools, err
		}
	}
	if err := writer.Flush(); err != nil {
		return writer.Written(), pools, err
	}
	return writer.Written(), pools, nil
}

// seedCustomers emits exactly count customers with run-unique emails built
// from each customer's own name; retries redraw only the random suffix and
// domain.
func (s *Seeder) seedCustomers(count int) (int, []uint, error) {
	var harvested []uint
	usedEmails := make(map[string]struct{})

	writer := newBatchWriter(s.batchSize, func(batch []model.Customer) error {
		if err := s.repos.Customers.BulkCreate(batch, s.batchSize); err != nil {
			return err
		}
		if s.cachePools {
			for i := range batch {
				harvested = append(harvested, batch[i].ID)
			}
		}
		return nil
	})

	for i := 0; i < count; i++ {
		firstName := s.faker.FirstName()
		lastName := s.faker.LastName()
		email, err := generateUnique(usedEmails, maxUniqueAttempts, func() string {
			return s.faker.Email(firstName, lastName)
		})
		if err != nil {
			return writer.Written(), nil, err
		}
		customer := model.Customer{
			FirstName:   firstName,
			LastName:    lastName,
			Email:       email,
			Country:     s.faker.Country(),
			City:        s.faker.City(),
			CreditLimit: s.faker.PriceBetween(500, 20000),
			TotalOrders: 0, // advisory, never reconciled against order rows
		}
		if err := writer.Add(customer); err != nil {
			return writer.Written(), nil, err
		}
	}
	if err := writer.Flush(); err != nil {
		return writer.Written(), nil, err
	}
	return writer.Written(), harvested, nil
}

// seedAddresses gives a share of customers one to three addresses; the first
// address per customer is the default one. Countries are drawn independently
// of the customer's own country.
func (s *Seeder) seedAddresses(customerIDs []uint) (int, error) {
	writer := newBatchWriter(s.batchSize, func(batch []model.Address) error {
		return s.repos.Addresses.BulkCreate(batch, s.batchSize)
	})

	for _, customerID := range customerIDs {
		if !s.faker.Bool(addressOwnerShare) {
			continue
		}
		count := s.faker.IntBetween(1, maxAddressesPerCustomer)
		for i := 0; i < count; i++ {
			address := model.Address{
				CustomerID: customerID,
				Street:     s.faker.Street(),
				City:       s.faker.City(),
				Country:    s.faker.Country(),
				IsDefault:  i == 0,
				Type:       s.addressType(),
			}
			if err := writer.Add(address); err != nil {
				return writer.Written(), err
			}
		}
	}
	if err := writer.Flush(); err != nil {
		return writer.Written(), err
	}
	return writer.Written(), nil
}

func (s *Seeder) addressType() model.AddressType {
	switch roll := s.faker.IntBetween(1, 10); {
	case roll <= 5:
		return model.AddressTypeShipping
	case roll <= 8:
		return model.AddressTypeBilling
	default:
		return model.AddressTypeBoth
	}
}

// seedOrders draws customers uniformly with repetition, so each customer ends
// up with roughly ordersPerCustomer orders rather than exactly that many.
func (s *Seeder) seedOrders(customerIDs []uint) (int, []uint, error) {
	var harvested []uint
	if len(customerIDs) == 0 {
		return 0, harvested, nil
	}

	usedOrderNumbers := make(map[string]struct{})
	writer := newBatchWriter(s.batchSize, func(batch []model.Order) error {
		if err := s.repos.Orders.BulkCreate(batch, s.batchSize); err != nil {
			return err
		}
		if s.cachePools {
			for i := range batch {
				harvested = append(harvested, batch[i].ID)
			}
		}
		return nil
	})

	now := time.Now()
	count := len(customerIDs) * ordersPerCustomer
	for i := 0; i < count; i++ {
		orderDate := s.faker.PastDate(now, orderHistoryDays)
		orderNumber, err := generateUnique(usedOrderNumbers, maxUniqueAttempts, func() string {
			return s.faker.OrderNumber(orderDate)
		})
		if err != nil {
			return writer.Written(), nil, err
		}

		var shippedDate *time.Time
		if s.faker.Bool(shippedProbability) {
			shipped := s.faker.DateBetween(orderDate, now)
			shippedDate = &shipped
		}

		totalAmount := s.faker.PriceBetween(20, 2000)
		order := model.Order{
			OrderNumber:  orderNumber,
			CustomerID:   customerIDs[s.faker.IntBetween(0, len(customerIDs)-1)],
			OrderDate:    orderDate,
			ShippedDate:  shippedDate,
			Status:       s.orderStatus(),
			TotalAmount:  totalAmount,
			Tax:          roundCents(totalAmount * taxRate),
			ShippingCost: s.shippingCost(),
		}
		if err := writer.Add(order); err != nil {
			return writer.Written(), nil, err
		}
	}
	if err := writer.Flush(); err != nil {
		return writer.Written(), nil, err
	}
	return writer.Written(), harvested, nil
}

func (s *Seeder) orderStatus() model.OrderStatus {
	switch roll := s.faker.IntBetween(1, 100); {
	case roll <= 40:
		return model.OrderStatusDelivered
	case roll <= 60:
		return model.OrderStatusShipped
	case roll <= 75:
		return model.OrderStatusProcessing
	case roll <= 85:
		return model.OrderStatusPending
	case roll <= 95:
		return model.OrderStatusCancelled
	default:
		return model.OrderStatusRefunded
	}
}

func (s *Seeder) shippingCost() float64 {
	costs := []float64{0, 4.99, 9.99, 19.99}
	return costs[s.faker.IntBetween(0, len(costs)-1)]
}

// seedOrderItems gives every order one to seven items. The product price list
// is passed in whole: one projection read feeds the entire stage.
func (s *Seeder) seedOrderItems(orderIDs []uint, prices []repository.ProductPrice) (int, error) {
	if len(orderIDs) == 0 || len(prices) == 0 {
		return 0, nil
	}

	writer := newBatchWriter(s.batchSize, func(batch []model.OrderItem) error {
		return s.repos.OrderItems.BulkCreate(batch, s.batchSize)
	})

	for _, orderID := range orderIDs {
		count := s.faker.IntBetween(1, maxItemsPerOrder)
		for i := 0; i < count; i++ {
			product := prices[s.faker.IntBetween(0, len(prices)-1)]
			quantity := s.faker.IntBetween(1, maxItemQuantity)
			discount := s.faker.Fraction(maxDiscount)
			item := model.OrderItem{
				OrderID:    orderID,
				ProductID:  product.ID,
				Quantity:   quantity,
				UnitPrice:  product.Price,
				Discount:   discount,
				TotalPrice: roundCents(float64(quantity) * product.Price * (1 - discount)),
			}
			if err := writer.Add(item); err != nil {
				return writer.Written(), err
			}
		}
	}
	if err := writer.Flush(); err != nil {
		return writer.Written(), err
	}
	return writer.Written(), nil
}

// seedReviews concentrates reviews on roughly a fifth of the active products:
// each reviewed product collects three to seven reviews from uniformly drawn
// customers, the rest get none. Inactive products never receive reviews.
func (s *Seeder) seedReviews(activeProductIDs, customerIDs []uint) (int, error) {
	if len(activeProductIDs) == 0 || len(customerIDs) == 0 {
		return 0, nil
	}

	writer := newBatchWriter(s.batchSize, func(batch []model.Review) error {
		return s.repos.Reviews.BulkCreate(batch, s.batchSize)
	})

	reviewedCount := int(math.Ceil(float64(len(activeProductIDs)) * reviewedProductShare))
	for _, productID := range s.faker.Sample(activeProductIDs, reviewedCount) {
		count := s.faker.IntBetween(minReviewsPerProduct, maxReviewsPerProduct)
		for i := 0; i < count; i++ {
			review := model.Review{
				ProductID:          productID,
				CustomerID:         customerIDs[s.faker.IntBetween(0, len(customerIDs)-1)],
				Rating:             s.faker.IntBetween(1, 5),
				Title:              s.faker.ReviewTitle(),
				Comment:            s.faker.ReviewComment(),
				IsVerifiedPurchase: s.faker.Bool(verifiedReviewProbability),
				HelpfulCount:       s.faker.IntBetween(0, 50),
				UnhelpfulCount:     s.faker.IntBetween(0, 10),
			}
			if err := writer.Add(review); err != nil {
				return writer.Written(), err
			}
		}
	}
	if err := writer.Flush(); err != nil {
		return writer.Written(), err
	}
	return writer.Written(), nil
}
