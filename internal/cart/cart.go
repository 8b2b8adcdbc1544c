package cart

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/models"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/storage"
)

const (
	KindMeal    = "meal"
	KindProduct = "product"
)

// IngredientSeparator delimits the ingredient list stored on a meal.
const IngredientSeparator = ", "

// MealCustomizations is the caller-side input when adding a meal:
// the kept ingredient subset (nil means keep all) plus free text.
type MealCustomizations struct {
	SelectedIngredients []string `json:"selected_ingredients"`
	SpecialInstructions string   `json:"special_instructions"`
}

// AddPayload is a denormalized copy of the catalog item at add time.
type AddPayload struct {
	Kind           string
	ItemID         int64
	Name           string
	Price          float64
	Image          string
	Ingredients    string
	Quantity       int
	Customizations *MealCustomizations
}

// Service owns the single device cart. Every mutation loads the line
// list, applies the change and rewrites the whole entry.
type Service struct {
	Store storage.Store
	Key   string
}

func NewService(store storage.Store) *Service {
	return &Service{Store: store, Key: storage.CartKey}
}

// Lines returns the persisted cart, empty on absent or corrupt data.
func (s *Service) Lines(ctx context.Context) []models.CartLine {
	return storage.Load(ctx, s.Store, s.Key, []models.CartLine{})
}

// Add merges the payload into the cart. Two additions that resolve to
// the same identity collapse into one line by summing quantities.
func (s *Service) Add(ctx context.Context, p AddPayload) ([]models.CartLine, error) {
	if p.Quantity < 1 {
		p.Quantity = 1
	}

	lineID, custom := LineIdentity(p)

	lines := s.Lines(ctx)
	merged := false
	for i := range lines {
		if lines[i].ID == lineID {
			lines[i].Quantity += p.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{
			ID:             lineID,
			Name:           p.Name,
			Price:          p.Price,
			Image:          p.Image,
			Quantity:       p.Quantity,
			Customizations: custom,
		})
	}

	return lines, storage.Save(ctx, s.Store, s.Key, lines)
}

// LineIdentity computes the composite line id and the customization
// record to denormalize onto the line (nil when the item is plain).
//
// Meals fold the sorted kept-ingredient subset and the trimmed
// instructions into the id, so identical selections collapse to one
// line no matter the order they were picked in. Products only carry
// instructions, and only when non-empty.
func LineIdentity(p AddPayload) (string, *models.Customizations) {
	id := fmt.Sprintf("%s-%d", p.Kind, p.ItemID)

	var instructions string
	if p.Customizations != nil {
		instructions = strings.TrimSpace(p.Customizations.SpecialInstructions)
	}

	switch {
	case p.Kind == KindMeal && p.Customizations != nil:
		all := strings.Split(p.Ingredients, IngredientSeparator)
		selected := p.Customizations.SelectedIngredients
		if selected == nil {
			selected = all
		}

		// Removed keeps the original ingredient-list order.
		removed := make([]string, 0)
		for _, ing := range all {
			if !contains(selected, ing) {
				removed = append(removed, ing)
			}
		}

		sortedSelected := append([]string(nil), selected...)
		sort.Strings(sortedSelected)
		id += fmt.Sprintf("-[%s]-[%s]", strings.Join(sortedSelected, ","), instructions)

		if len(removed) > 0 || instructions != "" {
			return id, &models.Customizations{Removed: removed, Added: instructions}
		}
		return id, nil

	case p.Kind == KindProduct && instructions != "":
		id += fmt.Sprintf("-[%s]", instructions)
		return id, &models.Customizations{Removed: []string{}, Added: instructions}
	}

	return id, nil
}

// UpdateQuantity sets the quantity of the line with the given id.
// Zero or below removes the line entirely.
func (s *Service) UpdateQuantity(ctx context.Context, lineID string, quantity int) ([]models.CartLine, error) {
	lines := s.Lines(ctx)
	if quantity <= 0 {
		kept := lines[:0]
		for _, line := range lines {
			if line.ID != lineID {
				kept = append(kept, line)
			}
		}
		lines = kept
	} else {
		for i := range lines {
			if lines[i].ID == lineID {
				lines[i].Quantity = quantity
			}
		}
	}
	return lines, storage.Save(ctx, s.Store, s.Key, lines)
}

func (s *Service) Clear(ctx context.Context) error {
	return storage.Save(ctx, s.Store, s.Key, []models.CartLine{})
}

// Count is the sum of line quantities, recomputed on every read.
func Count(lines []models.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

// Total is the sum of price*quantity over the denormalized per-line
// prices, recomputed on every read.
func Total(lines []models.CartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
