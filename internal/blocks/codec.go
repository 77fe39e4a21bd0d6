package blocks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type blockEnvelope struct {
	ID   string          `json:"id"`
	Type Kind            `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON encodes the block using the {id, type, data} wire shape.
func (b Block) MarshalJSON() ([]byte, error) {
	env := blockEnvelope{
		ID:   b.ID.String(),
		Type: b.Kind,
	}
	switch data := b.Data.(type) {
	case nil:
	case UnknownData:
		if len(data.Raw) > 0 {
			env.Data = json.RawMessage(data.Raw)
		}
	case MalformedData:
		if len(data.Raw) > 0 {
			env.Data = json.RawMessage(data.Raw)
		}
	default:
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("blocks: encode %s payload: %w", b.Kind, err)
		}
		env.Data = encoded
	}
	return json.Marshal(env)
}

// UnmarshalJSON decodes the block, dispatching on the type tag into the
// matching payload variant. Unknown type tags decode into UnknownData so a
// page authored against a newer block set still parses.
func (b *Block) UnmarshalJSON(data []byte) error {
	var env blockEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("blocks: decode block: %w", err)
	}

	id, err := uuid.Parse(strings.TrimSpace(env.ID))
	if err != nil {
		id = uuid.New()
	}

	payload, err := decodePayload(env.Type, env.Data)
	if err != nil {
		// Shape mismatches are contained at the block boundary: the raw
		// payload is preserved and siblings keep decoding.
		payload = MalformedData{
			Kind:   env.Type,
			Raw:    append([]byte(nil), env.Data...),
			Reason: err.Error(),
		}
	}

	b.ID = id
	b.Kind = env.Type
	b.Data = payload
	return nil
}

// decodePayload dispatches a raw payload into the typed variant for kind.
// The switch is exhaustive over the closed kind set; every new kind added to
// the enumeration must add an arm here or decode as UnknownData.
func decodePayload(kind Kind, raw json.RawMessage) (Data, error) {
	decode := func(target Data) (Data, error) {
		if len(raw) == 0 {
			return target, nil
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, fmt.Errorf("blocks: decode %s payload: %w", kind, err)
		}
		return target, nil
	}

	var (
		payload Data
		err     error
	)
	switch kind {
	case KindHero:
		payload, err = decode(&HeroData{})
	case KindText:
		payload, err = decode(&TextData{})
	case KindRichText:
		payload, err = decode(&RichTextData{})
	case KindImage:
		payload, err = decode(&ImageData{})
	case KindCTA:
		payload, err = decode(&CTAData{})
	case KindFeatures:
		payload, err = decode(&FeaturesData{})
	case KindPricing:
		payload, err = decode(&PricingData{})
	case KindFAQ:
		payload, err = decode(&FAQData{})
	case KindTestimonials:
		payload, err = decode(&TestimonialsData{})
	case KindTable:
		payload, err = decode(&TableData{})
	case KindDivider:
		payload, err = decode(&DividerData{})
	case KindEmbed:
		payload, err = decode(&EmbedData{})
	case KindProducts:
		payload, err = decode(&ProductsData{})
	case KindProductGrid:
		payload, err = decode(&ProductGridData{})
	case KindChat:
		payload, err = decode(&ChatData{})
	case KindBlogPosts:
		payload, err = decode(&BlogPostsData{})
	case KindKBArticles:
		payload, err = decode(&KBArticlesData{})
	case KindNewsletterSignup:
		payload, err = decode(&NewsletterSignupData{})
	case KindBooking:
		payload, err = decode(&BookingData{})
	case KindColumns:
		payload, err = decode(&ColumnsData{})
	case KindTabs:
		payload, err = decode(&TabsData{})
	default:
		return UnknownData{Kind: kind, Raw: append([]byte(nil), raw...)}, nil
	}
	if err != nil {
		return nil, err
	}
	return deref(payload), nil
}

// deref converts the pointer used during decoding back into the value form
// the rest of the package traffics in.
func deref(payload Data) Data {
	switch typed := payload.(type) {
	case *HeroData:
		return *typed
	case *TextData:
		return *typed
	case *RichTextData:
		return *typed
	case *ImageData:
		return *typed
	case *CTAData:
		return *typed
	case *FeaturesData:
		return *typed
	case *PricingData:
		return *typed
	case *FAQData:
		return *typed
	case *TestimonialsData:
		return *typed
	case *TableData:
		return *typed
	case *DividerData:
		return *typed
	case *EmbedData:
		return *typed
	case *ProductsData:
		return *typed
	case *ProductGridData:
		return *typed
	case *ChatData:
		return *typed
	case *BlogPostsData:
		return *typed
	case *KBArticlesData:
		return *typed
	case *NewsletterSignupData:
		return *typed
	case *BookingData:
		return *typed
	case *ColumnsData:
		return *typed
	case *TabsData:
		return *typed
	default:
		return payload
	}
}

// New creates a fresh block of the given kind with that kind's zero payload.
func New(kind Kind) Block {
	payload, err := decodePayload(kind, nil)
	if err != nil {
		payload = UnknownData{Kind: kind}
	}
	return Block{
		ID:   uuid.New(),
		Kind: kind,
		Data: deref(payload),
	}
}

// Clone deep-copies the block under a fresh identifier. Nested child blocks
// inside container payloads receive fresh identifiers as well so a pasted
// layout never shares identifiers with its source.
func (b Block) Clone() Block {
	out := Block{
		ID:   uuid.New(),
		Kind: b.Kind,
	}
	if b.Data != nil {
		out.Data = reidentify(b.Data.deepCopy())
	}
	return out
}

func reidentify(data Data) Data {
	switch typed := data.(type) {
	case ColumnsData:
		typed.Left = typed.Left.cloneFresh()
		typed.Right = typed.Right.cloneFresh()
		return typed
	case TabsData:
		for i := range typed.Tabs {
			typed.Tabs[i].Blocks = typed.Tabs[i].Blocks.cloneFresh()
		}
		return typed
	default:
		return data
	}
}

// deepCopy duplicates the list preserving identifiers.
func (l List) deepCopy() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	for i, block := range l {
		copied := block
		if block.Data != nil {
			copied.Data = block.Data.deepCopy()
		}
		out[i] = copied
	}
	return out
}

func (l List) cloneFresh() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	for i, block := range l {
		out[i] = block.Clone()
	}
	return out
}

// CloneFresh duplicates the list assigning fresh identifiers throughout.
func (l List) CloneFresh() List {
	return l.cloneFresh()
}

// Copy duplicates the list preserving identifiers.
func (l List) Copy() List {
	return l.deepCopy()
}
