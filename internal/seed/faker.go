package seed

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Word pools

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
	"Nicholas", "Angela", "Eric", "Shirley", "Jonathan", "Anna", "Stephen", "Brenda",
	"Larry", "Pamela", "Justin", "Emma", "Scott", "Nicole", "Brandon", "Helen",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
	"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com",
	"icloud.com", "mail.com", "fastmail.com", "zoho.com", "aol.com",
}

var mainCategoryNames = []string{
	"Electronics", "Clothing", "Home", "Garden", "Sports", "Toys",
	"Books", "Music", "Food", "Health", "Beauty", "Automotive",
}

var subCategoryAdjectives = []string{
	"Wireless", "Portable", "Smart", "Outdoor", "Vintage", "Premium",
	"Compact", "Classic", "Modern", "Professional", "Eco", "Digital",
}

var subCategoryNouns = []string{
	"Accessories", "Essentials", "Gear", "Supplies", "Equipment",
	"Collections", "Basics", "Tools", "Kits", "Bundles",
}

var productAdjectives = []string{
	"Ultra", "Deluxe", "Compact", "Ergonomic", "Heavy-Duty", "Lightweight",
	"Rechargeable", "Foldable", "Adjustable", "Waterproof", "Cordless", "Reinforced",
}

var productNouns = []string{
	"Speaker", "Backpack", "Lamp", "Keyboard", "Mixer", "Tent", "Monitor",
	"Charger", "Blender", "Drill", "Jacket", "Tripod", "Kettle", "Headset",
	"Notebook", "Scooter", "Camera", "Router", "Mattress", "Chair",
}

var streetNames = []string{
	"Maple Street", "Oak Avenue", "Cedar Lane", "Pine Road", "Elm Drive",
	"Park Boulevard", "River Road", "Hillcrest Avenue", "Sunset Drive", "Lakeview Terrace",
}

var cities = []string{
	"Springfield", "Riverton", "Fairview", "Georgetown", "Clinton", "Salem",
	"Madison", "Franklin", "Arlington", "Ashland", "Dover", "Hudson",
}

var countries = []string{
	"United States", "Canada", "United Kingdom", "Germany", "France",
	"Spain", "Netherlands", "Australia", "Japan", "Brazil",
}

var reviewTitles = []string{
	"Exactly as described", "Would buy again", "Not what I expected",
	"Great value", "Solid build quality", "Does the job", "Impressive for the price",
	"Could be better", "Exceeded expectations", "Decent purchase",
}

var reviewComments = []string{
	"Arrived quickly and works as advertised.",
	"Quality feels better than the price suggests.",
	"Had some trouble at first but it grew on me.",
	"Packaging was damaged but the item was fine.",
	"Been using it daily for a month with no issues.",
	"Smaller than it looks in the pictures.",
	"Replaced an older model and the difference is noticeable.",
	"Customer support was helpful when I had questions.",
	"Instructions could be clearer, otherwise happy.",
	"Bought one for a friend as well.",
}

const skuAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Faker produces plausible field values from an injected random source so a
// fixed seed yields a reproducible dataset. Providers never fail.
type Faker struct {
	rng *rand.Rand
}

func NewFaker(rng *rand.Rand) *Faker {
	return &Faker{rng: rng}
}

func (f *Faker) pick(pool []string) string {
	return pool[f.rng.Intn(len(pool))]
}

func (f *Faker) FirstName() string { return f.pick(firstNames) }
func (f *Faker) LastName() string  { return f.pick(lastNames) }
func (f *Faker) Street() string {
	return fmt.Sprintf("%d %s", f.IntBetween(1, 9999), f.pick(streetNames))
}
func (f *Faker) City() string    { return f.pick(cities) }
func (f *Faker) Country() string { return f.pick(countries) }

// Email builds an address from the already chosen first/last name. Global
// uniqueness is the caller's job; the random digits just keep collisions rare.
func (f *Faker) Email(firstName, lastName string) string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(firstName),
		strings.ToLower(lastName),
		f.rng.Intn(10000),
		f.pick(emailDomains),
	)
}

func (f *Faker) MainCategoryName() string { return f.pick(mainCategoryNames) }

func (f *Faker) SubCategoryName() string {
	return f.pick(subCategoryAdjectives) + " " + f.pick(subCategoryNouns)
}

func (f *Faker) ProductName() string {
	return f.pick(productAdjectives) + " " + f.pick(productNouns)
}

func (f *Faker) SKU() string {
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = skuAlphabet[f.rng.Intn(len(skuAlphabet))]
	}
	return "SKU-" + string(suffix)
}

func (f *Faker) OrderNumber(orderDate time.Time) string {
	return fmt.Sprintf("ORD-%s-%06d", orderDate.Format("20060102"), f.rng.Intn(1000000))
}

func (f *Faker) ReviewTitle() string   { return f.pick(reviewTitles) }
func (f *Faker) ReviewComment() string { return f.pick(reviewComments) }

// PriceBetween returns a uniform price in [min, max] rounded to cents.
func (f *Faker) PriceBetween(min, max float64) float64 {
	value := min + f.rng.Float64()*(max-min)
	return math.Round(value*100) / 100
}

func (f *Faker) IntBetween(min, max int) int {
	return min + f.rng.Intn(max-min+1)
}

// Bool returns true with the given probability.
func (f *Faker) Bool(probability float64) bool {
	return f.rng.Float64() < probability
}

// Fraction returns a uniform value in the half-open range [0, max).
func (f *Faker) Fraction(max float64) float64 {
	return f.rng.Float64() * max
}

// Sample returns n distinct ids drawn uniformly from the pool, or a shuffled
// copy of the whole pool when n exceeds its size. The pool itself is not
// mutated.
func (f *Faker) Sample(pool []uint, n int) []uint {
	shuffled := make([]uint, len(pool))
	copy(shuffled, pool)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	for i := 0; i < n; i++ {
		j := i + f.rng.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:n]
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}

// PastDate returns a moment uniformly distributed within the past maxDays.
func (f *Faker) PastDate(now time.Time, maxDays int) time.Time {
	offset := time.Duration(f.rng.Int63n(int64(maxDays) * int64(24*time.Hour)))
	return now.Add(-offset)
}

// DateBetween returns a moment uniformly distributed in [from, to].
func (f *Faker) DateBetween(from, to time.Time) time.Time {
	if !to.After(from) {
		return from
	}
	span := to.Sub(from)
	return from.Add(time.Duration(f.rng.Int63n(int64(span))))
}
