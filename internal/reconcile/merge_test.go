package reconcile

import (
	"testing"

	"capquote/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_StyleNonRegression(t *testing.T) {
	persisted := &entities.ProductSpecification{Style: entities.Style{Fabric: "Suede Cotton"}}
	text := &entities.ProductSpecification{Style: entities.Style{Size: "Medium"}}

	got := Merge(Sources{TextExtracted: text, Persisted: persisted})

	assert.Equal(t, entities.Style{Fabric: "Suede Cotton", Size: "Medium"}, got.Style)
}

func TestMerge_StylePriority(t *testing.T) {
	persisted := &entities.ProductSpecification{Style: entities.Style{Closure: "Snapback"}}
	agent := &entities.ProductSpecification{Style: entities.Style{Closure: "Fitted", Profile: "Low", Color: []string{"Navy"}}}
	text := &entities.ProductSpecification{Style: entities.Style{Closure: "Velcro", Profile: "High", Stitching: "Contrast", Color: []string{"Red"}}}

	got := Merge(Sources{AgentStructured: agent, TextExtracted: text, Persisted: persisted})

	assert.Equal(t, "Snapback", got.Style.Closure, "confirmed value must not regress")
	assert.Equal(t, "Low", got.Style.Profile, "agent beats text")
	assert.Equal(t, "Contrast", got.Style.Stitching)
	assert.Equal(t, []string{"Navy"}, got.Style.Color)
}

func TestMerge_AccessoryUnionIdempotent(t *testing.T) {
	persisted := &entities.ProductSpecification{Customization: entities.Customization{
		Accessories: []entities.AccessoryEntry{{Name: "Hang Tag"}},
	}}
	text := &entities.ProductSpecification{Customization: entities.Customization{
		Accessories: []entities.AccessoryEntry{{Name: "Hang Tag"}, {Name: "Sticker"}},
	}}

	first := Merge(Sources{TextExtracted: text, Persisted: persisted})
	second := Merge(Sources{TextExtracted: text, Persisted: &first})

	want := []entities.AccessoryEntry{{Name: "Hang Tag"}, {Name: "Sticker"}}
	assert.Equal(t, want, first.Customization.Accessories)
	assert.Equal(t, want, second.Customization.Accessories)
}

func TestMerge_AccessoryNeverDropped(t *testing.T) {
	persisted := &entities.ProductSpecification{Customization: entities.Customization{
		Accessories: []entities.AccessoryEntry{{Name: "Inside Label"}},
	}}
	got := Merge(Sources{TextExtracted: &entities.ProductSpecification{}, Persisted: persisted})
	assert.Equal(t, []entities.AccessoryEntry{{Name: "Inside Label"}}, got.Customization.Accessories)
}

func TestMerge_Logos(t *testing.T) {
	front3D := entities.LogoEntry{Location: entities.LogoLocationFront, Method: entities.LogoMethod3DEmbroidery, Size: entities.LogoSizeLarge}
	persisted := &entities.ProductSpecification{Customization: entities.Customization{
		Logos: []entities.LogoEntry{front3D},
	}}
	text := &entities.ProductSpecification{Customization: entities.Customization{
		Logos: []entities.LogoEntry{
			{Location: entities.LogoLocationFront, Method: entities.LogoMethod3DEmbroidery, Size: entities.LogoSizeSmall},
			{Location: entities.LogoLocationBack, Method: entities.LogoMethodScreenPrint, Size: entities.LogoSizeMedium},
		},
	}}

	got := Merge(Sources{TextExtracted: text, Persisted: persisted})

	assert.Equal(t, []entities.LogoEntry{
		front3D,
		{Location: entities.LogoLocationBack, Method: entities.LogoMethodScreenPrint, Size: entities.LogoSizeMedium},
	}, got.Customization.Logos)
}

func TestMerge_PricingIsReplacedAsUnit(t *testing.T) {
	persisted := &entities.ProductSpecification{Pricing: &entities.Pricing{Total: 450, BaseCost: 300, CustomizationCost: 120, Quantity: 144}}
	text := &entities.ProductSpecification{Pricing: &entities.Pricing{Total: 460, Quantity: 144}}

	got := Merge(Sources{TextExtracted: text, Persisted: persisted})
	require.NotNil(t, got.Pricing)
	assert.Equal(t, entities.Pricing{Total: 460, Quantity: 144}, *got.Pricing)

	got = Merge(Sources{TextExtracted: &entities.ProductSpecification{}, Persisted: persisted})
	require.NotNil(t, got.Pricing)
	assert.Equal(t, 450.0, got.Pricing.Total, "persisted pricing survives a turn without pricing")

	got.Pricing.Total = 1
	assert.Equal(t, 450.0, persisted.Pricing.Total, "inputs must not be aliased")
}

func TestMerge_DeliveryLatestFirst(t *testing.T) {
	persisted := &entities.ProductSpecification{Delivery: entities.Delivery{Method: "Regular Delivery", LeadTime: "4-6 days", Cost: entities.Float(0)}}
	text := &entities.ProductSpecification{Delivery: entities.Delivery{Method: "Priority Delivery", Cost: entities.Float(45)}}

	got := Merge(Sources{TextExtracted: text, Persisted: persisted})

	assert.Equal(t, "Priority Delivery", got.Delivery.Method)
	assert.Equal(t, "4-6 days", got.Delivery.LeadTime)
	require.NotNil(t, got.Delivery.Cost)
	assert.Equal(t, 45.0, *got.Delivery.Cost)
}

func TestMerge_NoSources(t *testing.T) {
	assert.True(t, Merge(Sources{}).IsEmpty())
}
