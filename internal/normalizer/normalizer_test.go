package normalizer

import (
	"testing"

	"capquote/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Style(t *testing.T) {
	n := New(Defaults{})

	cases := []struct {
		name string
		in   entities.Style
		want entities.Style
	}{
		{
			name: "fabric combination is order independent",
			in:   entities.Style{Fabric: "laser cut + polyester"},
			want: entities.Style{Fabric: "Polyester/Laser Cut"},
		},
		{
			name: "fabric combination with slash",
			in:   entities.Style{Fabric: "polyester/laser-cut"},
			want: entities.Style{Fabric: "Polyester/Laser Cut"},
		},
		{
			name: "unknown fabric pair keeps both parts",
			in:   entities.Style{Fabric: "denim & air mesh"},
			want: entities.Style{Fabric: "Denim/Air Mesh"},
		},
		{
			name: "bill shape",
			in:   entities.Style{BillShape: "slight curved"},
			want: entities.Style{BillShape: "Slight Curved"},
		},
		{
			name: "structure does not collapse unstructured",
			in:   entities.Style{Structure: "UNSTRUCTURED"},
			want: entities.Style{Structure: "Unstructured"},
		},
		{
			name: "closure",
			in:   entities.Style{Closure: "plastic snapback"},
			want: entities.Style{Closure: "Snapback"},
		},
		{
			name: "colors are canonical and unique",
			in:   entities.Style{Color: []string{"black", "heather gray", "Black"}},
			want: entities.Style{Color: []string{"Black", "Heather Grey"}},
		},
		{
			name: "combined color entries are split",
			in:   entities.Style{Color: []string{"Black/White", "navy blue & red", "white"}},
			want: entities.Style{Color: []string{"Black", "White", "Navy", "Red"}},
		},
		{
			name: "unknown value is title-cased",
			in:   entities.Style{Size: "  seven   and a quarter "},
			want: entities.Style{Size: "Seven And A Quarter"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(entities.ProductSpecification{Style: tc.in})
			assert.Equal(t, tc.want, got.Style)
		})
	}
}

func TestNormalize_Delivery(t *testing.T) {
	n := New(Defaults{})
	got := n.Normalize(entities.ProductSpecification{Delivery: entities.Delivery{
		Method:   "priority delivery",
		LeadTime: "7 to 10 Days",
	}})
	assert.Equal(t, "Priority Delivery", got.Delivery.Method)
	assert.Equal(t, "7-10 days", got.Delivery.LeadTime)
	assert.Nil(t, got.Delivery.Cost)
}

func TestNormalize_Customization(t *testing.T) {
	n := New(Defaults{})
	got := n.Normalize(entities.ProductSpecification{Customization: entities.Customization{
		Logos: []entities.LogoEntry{
			{Location: "front", Method: "3D Embroidery", Size: "large"},
			{Location: "Front", Method: "3DEmbroidery", Size: "Small"},
			{Location: "left side", Method: "flat embroidery"},
			{Location: "inside", Method: "laser"},
		},
		Accessories: []entities.AccessoryEntry{
			{Name: "hang tags"},
			{Name: "Hang Tag", Quantity: 144},
			{Name: "b-tape"},
			{Name: "woven patch"},
		},
	}})

	assert.Equal(t, []entities.LogoEntry{
		{Location: entities.LogoLocationFront, Method: entities.LogoMethod3DEmbroidery, Size: entities.LogoSizeLarge},
		{Location: entities.LogoLocationLeft, Method: entities.LogoMethodFlatEmbroidery, Size: entities.LogoSizeMedium},
	}, got.Customization.Logos)
	assert.Equal(t, []entities.AccessoryEntry{
		{Name: "Hang Tag", Quantity: 144},
		{Name: "B-Tape Print"},
		{Name: "Woven Patch"},
	}, got.Customization.Accessories)
}

func TestNormalize_PricingNeedsQuantity(t *testing.T) {
	n := New(Defaults{})
	got := n.Normalize(entities.ProductSpecification{Pricing: &entities.Pricing{Total: 450}})
	assert.Nil(t, got.Pricing)

	got = n.Normalize(entities.ProductSpecification{Pricing: &entities.Pricing{Total: 450, Quantity: 144}})
	require.NotNil(t, got.Pricing)
	assert.Equal(t, 144, got.Pricing.Quantity)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	n := New(Defaults{})
	in := entities.ProductSpecification{Style: entities.Style{Color: []string{"black"}}}
	_ = n.Normalize(in)
	assert.Equal(t, []string{"black"}, in.Style.Color)
}

func TestWithDefaults(t *testing.T) {
	t.Run("fills only absent fields", func(t *testing.T) {
		n := New(Defaults{})
		in := entities.ProductSpecification{Style: entities.Style{Fabric: "Suede Cotton"}}
		got := n.WithDefaults(in)

		assert.Equal(t, entities.Style{
			Size:      "Medium",
			Color:     []string{"Black"},
			Profile:   "High",
			BillShape: "Curved",
			Structure: "Structured",
			Fabric:    "Suede Cotton",
			Closure:   "Snapback",
			Stitching: "Matching",
		}, got.Style)
		assert.Equal(t, "Regular Delivery", got.Delivery.Method)
		assert.Equal(t, "4-6 days", got.Delivery.LeadTime)
		require.NotNil(t, got.Delivery.Cost)
		assert.Equal(t, 0.0, *got.Delivery.Cost)

		assert.Empty(t, in.Style.Size, "input must not be modified")
		assert.Nil(t, in.Delivery.Cost)
	})

	t.Run("overrides replace table entries", func(t *testing.T) {
		n := New(Defaults{Fabric: "Cotton Twill", DeliveryCost: 25})
		got := n.WithDefaults(entities.ProductSpecification{})
		assert.Equal(t, "Cotton Twill", got.Style.Fabric)
		assert.Equal(t, "Medium", got.Style.Size)
		require.NotNil(t, got.Delivery.Cost)
		assert.Equal(t, 25.0, *got.Delivery.Cost)
	})
}
