package keystone

import "context"

// Descriptor is the sealed, statically-typed dependency-tuple contract.
// Deps0..Deps8 are its only implementations (the library caps declared
// dependencies at arity 8, per spec.md §4.4); downstream code cannot add
// further arities or implement Descriptor itself because sealed requires
// the unexported sealToken.
type Descriptor[D any] interface {
	sealed(sealToken)
	typeIDs() []depInfo
	materialize(ctx context.Context, r *Registry) (D, error)
}

// Deps0 is the empty dependency tuple, for no-dependency constructors.
type Deps0 struct{}

func (Deps0) sealed(sealToken)   {}
func (Deps0) typeIDs() []depInfo { return nil }
func (Deps0) materialize(context.Context, *Registry) (Deps0, error) { return Deps0{}, nil }

// Deps1 is the 1-ary dependency tuple.
type Deps1[H1 depSlot] struct {
	D1 H1
}

// NewDeps1 declares a 1-ary dependency tuple from the given handles, in
// declaration order.
func NewDeps1[H1 depSlot](d1 H1) Deps1[H1] {
	return Deps1[H1]{
		D1: d1,
	}
}

func (d Deps1[H1]) sealed(sealToken) {}

func (d Deps1[H1]) typeIDs() []depInfo {
	return []depInfo{d.D1.info()}
}

func (d Deps1[H1]) materialize(ctx context.Context, r *Registry) (Deps1[H1], error) {
	mD1, err := d.D1.materialize(ctx, r)
	if err != nil {
		return Deps1[H1]{}, err
	}
	hD1, ok := mD1.(H1)
	if !ok {
		return Deps1[H1]{}, errTypeMismatch(d.D1.info().key, mD1)
	}
	return Deps1[H1]{
		D1: hD1,
	}, nil
}

// Deps2 is the 2-ary dependency tuple.
type Deps2[H1 depSlot, H2 depSlot] struct {
	D1 H1
	D2 H2
}

// NewDeps2 declares a 2-ary dependency tuple from the given handles, in
// declaration order.
func NewDeps2[H1 depSlot, H2 depSlot](d1 H1, d2 H2) Deps2[H1, H2] {
	return Deps2[H1, H2]{
		D1: d1,
		D2: d2,
	}
}

func (d Deps2[H1, H2]) sealed(sealToken) {}

func (d Deps2[H1, H2]) typeIDs() []depInfo {
	return []depInfo{d.D1.info(), d.D2.info()}
}

func (d Deps2[H1, H2]) materialize(ctx context.Context, r *Registry) (Deps2[H1, H2], error) {
	mD1, err := d.D1.materialize(ctx, r)
	if err != nil {
		return Deps2[H1, H2]{}, err
	}
	hD1, ok := mD1.(H1)
	if !ok {
		return Deps2[H1, H2]{}, errTypeMismatch(d.D1.info().key, mD1)
	}
	mD2, err := d.D2.materialize(ctx, r)
	if err != nil {
		return Deps2[H1, H2]{}, err
	}
	hD2, ok := mD2.(H2)
	if !ok {
		return Deps2[H1, H2]{}, errTypeMismatch(d.D2.info().key, mD2)
	}
	return Deps2[H1, H2]{
		D1: hD1,
		D2: hD2,
	}, nil
}

// Deps3 is the 3-ary dependency tuple.
type Deps3[H1 depSlot, H2 depSlot, H3 depSlot] struct {
	D1 H1
	D2 H2
	D3 H3
}

// NewDeps3 declares a 3-ary dependency tuple from the given handles, in
// declaration order.
func NewDeps3[H1 depSlot, H2 depSlot, H3 depSlot](d1 H1, d2 H2, d3 H3) Deps3[H1, H2, H3] {
	return Deps3[H1, H2, H3]{
		D1: d1,
		D2: d2,
		D3: d3,
	}
}

func (d Deps3[H1, H2, H3]) sealed(sealToken) {}

func (d Deps3[H1, H2, H3]) typeIDs() []depInfo {
	return []depInfo{d.D1.info(), d.D2.info(), d.D3.info()}
}

func (d Deps3[H1, H2, H3]) materialize(ctx context.Context, r *Registry) (Deps3[H1, H2, H3], error) {
	mD1, err := d.D1.materialize(ctx, r)
	if err != nil {
		return Deps3[H1, H2, H3]{}, err
	}
	hD1, ok := mD1.(H1)
	if !ok {
		return Deps3[H1, H2, H3]{}, errTypeMismatch(d.D1.info().key, mD1)
	}
	mD2, err := d.D2.materialize(ctx, r)
	if err != nil {
		return Deps3[H1, H2, H3]{}, err
	}
	hD2, ok := mD2.(H2)
	if !ok {
		return Deps3[H1, H2, H3]{}, errTypeMismatch(d.D2.info().key, mD2)
	}
	mD3, err := d.D3.materialize(ctx, r)
	if err != nil {
		return Deps3[H1, H2, H3]{}, err
	}
	hD3, ok := mD3.(H3)
	if !ok {
		return Deps3[H1, H2, H3]{}, errTypeMismatch(d.D3.info().key, mD3)
	}
	return Deps3[H1, H2, H3]{
		D1: hD1,
		D2: hD2,
		D3: hD3,
	}, nil
}

// Deps4 is the 4-ary dependency tuple.
type Deps4[H1 depSlot, H2 depSlot, H3 depSlot, H4 depSlot] struct {
	D1 H1
	D2 H2
	D3 H3
	D4 H4
}

// NewDeps4 declares a 4-ary dependency tuple from the given handles, in
// declaration order.
func NewDeps4[H1 depSlot, H2 depSlot, H3 depSlot, H4 depSlot](d1 H1, d2 H2, d3 H3, d4 H4) Deps4[H1, H2, H3, H4] {
	return Deps4[H1, H2, H3, H4]{
		D1: d1,
		D2: d2,
		D3: d3,
		D4: d4,
	}
}

func (d Deps4[H1, H2, H3, H4]) sealed(sealToken) {}

func (d Deps4[H1, H2, H3, H4]) typeIDs() []depInfo {
	return []depInfo{d.D1.info(), d.D2.info(), d.D3.info(), d.D4.info()}
}

func (d Deps4[H1, H2, H3, H4]) materialize(ctx context.Context, r *Registry) (Deps4[H1, H2, H3, H4], error) {
	mD1, err := d.D1.materialize(ctx, r)
	if err != nil {
		return Deps4[H1, H2, H3, H4]{}, err
	}
	hD1, ok := mD1.(H1)
	if !ok {
		return Deps4[H1, H2, H3, H4]{}, errTypeMismatch(d.D1.info().key, mD1)
	}
	mD2, err := d.D2.materialize(ctx, r)
	if err != nil {
		return Deps4[H1, H2, H3, H4]{}, err
	}
	hD2, ok := mD2.(H2)
	if !ok {
		return Deps4[H1, H2, H3, H4]{}, errTypeMismatch(d.D2.info().key, mD2)
	}
	mD3, err := d.D3.materialize(ctx, r)
	if err != nil {
		return Deps4[H1, H2, H3, H4]{}, err
	}
	hD3, ok := mD3.(H3)
	if !ok {
		return Deps4[H1, H2, H3, H4]{}, errTypeMismatch(d.D3.info().key, mD3)
	}
	mD4, err := d.D4.materialize(ctx, r)
	if err != nil {
		return Deps4[H1, H2, H3, H4]{}, err
	}
	hD4, ok := mD4.(H4)
	if !ok {
		return Deps4[H1, H2, H3, H4]{}, errTypeMismatch(d.D4.info().key, mD4)
	}
	return Deps4[H1, H2, H3, H4]{
		D1: hD1,
		D2: hD2,
		D3: hD3,
		D4: hD4,
	}, nil
}

// Deps5 is the 5-ary dependency tuple.
type Deps5[H1 depSlot, H2 depSlot, H3 depSlot, H4 depSlot, H5 depSlot] struct {
	D1 H1
	D2 H2
	D3 H3
	D4 H4
	D5 H5
}

// NewDeps5 declares a 5-ary dependency tuple from the given handles, in
// declaration order.
func NewDeps5[H1 depSlot, H2 depSlot, H3 depSlot, H4 depSlot, H5 depSlot](d1 H1, d2 H2, d3 H3, d4 H4, d5 H5) Deps5[H1, H2, H3, H4, H5] {
	return Deps5[H1, H2, H3, H4, H5]{
		D1: d1,
		D2: d2,
		D3: d3,
		D4: d4,
		D5: d5,
	}
}

func (d Deps5[H1, H2, H3, H4, H5]) sealed(sealToken) {}

func (d Deps5[H1, H2, H3, H4, H5]) typeIDs() []depInfo {
	return []depInfo{d.D1.info(), d.D2.info(), d.D3.info(), d.D4.info(), d.D5.info()}
}

func (d Deps5[H1, H2, H3, H4, H5]) materialize(ctx context.Context, r *Registry) (Deps5[H1, H2, H3, H4, H5], error) {
	mD1, err := d.D1.materialize(ctx, r)
	if err != nil {
		return Deps5[H1, H2, H3, H4, H5]{}, err
	}
	hD1, ok := mD1.(H1)
	if !ok {
		return Deps5[H1, H2, H3, H4, H5]{}, errTypeMismatch(d.D1.info().key, mD1)
	}
	mD2, err := d.D2.materialize(ctx, r)
	if err != nil {
		return Deps5[H1, H2, H3, H4, H5]{}, err
	}
	hD2, ok := mD2.(H2)
	if !ok {
		return Deps5[H1, H2, H3, H4, H5]{}, errTypeMismatch(d.D2.info().key, mD2)
	}
	mD3, err := d.D3.materialize(ctx, r)
	if err != nil {
		return Deps5[H1, H2, H3, H4, H5]{}, err
	}
	hD3, ok := mD3.(H3)
	if !ok {
		return Deps5[H1, H2, H3, H4, H5]{}, errTypeMismatch(d.D3.info().key, mD3)
	}
	mD4, err := d.D4.materialize(ctx, r)
	if err != nil {
		return Deps5[H1, H2, H3, H4, H5]{}, err
	}
	hD4, ok := mD4.(H4)
	if !ok {
		return Deps5[H1, H2, H3, H4, H5]{}, errTypeMismatch(d.D4.info().key, mD4)
	}
	mD5, err := d.D5.materialize(ctx, r)
	if err != nil {
		return Deps5[H1, H2, H3, H4, H5]{}, err
	}
	hD5, ok := mD5.(H5)
	if !ok {
		return Deps5[H1, H2, H3, H4, H5]{}, errTypeMismatch(d.D5.info().key, mD5)
	}
	return Deps5[H1, H2, H3, H4, H5]{
		D1: hD1,
		D2: hD2,
		D3: hD3,
		D4: hD4,
		D5: hD5,
	}, nil
}

// Deps6 is the 6-ary dependency tuple.
type Deps6[H1 depSlot, H2 depSlot, H3 depSlot, H4 depSlot, H5 depSlot, H6 depSlot] struct {
	D1 H1
	D2 H2
	D3 H3
	D4 H4
	D5 H5
	D6 H6
}

// NewDeps6 declares a 6-ary dependency tuple from the given handles, in
// declaration order.
func NewDeps6[H1 depSlot, H2 depSlot, H3 depSlot, H4 depSlot, H5 depSlot, H6 depSlot](d1 H1, d2 H2, d3 H3, d4 H4, d5 H5, d6 H6) Deps6[H1, H2, H3, H4, H5, H6] {
	return Deps6[H1, H2, H3, H4, H5, H6]{
		D1: d1,
		D2: d2,
		D3: d3,
		D4: d4,
		D5: d5,
		D6: d6,
	}
}

func (d Deps6[H1, H2, H3, H4, H5, H6]) sealed(sealToken) {}

func (d Deps6[H1, H2, H3, H4, H5, H6]) typeIDs() []depInfo {
	return []depInfo{d.D1.info(), d.D2.info(), d.D3.info(), d.D4.info(), d.D5.info(), d.D6.info()}
}

func (d Deps6[H1, H2, H3, H4, H5, H6]) materialize(ctx context.Context, r *Registry) (Deps6[H1, H2, H3, H4, H5, H6], error) {
	mD1, err := d.D1.materialize(ctx, r)
	if err != nil {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, err
	}
	hD1, ok := mD1.(H1)
	if !ok {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, errTypeMismatch(d.D1.info().key, mD1)
	}
	mD2, err := d.D2.materialize(ctx, r)
	if err != nil {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, err
	}
	hD2, ok := mD2.(H2)
	if !ok {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, errTypeMismatch(d.D2.info().key, mD2)
	}
	mD3, err := d.D3.materialize(ctx, r)
	if err != nil {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, err
	}
	hD3, ok := mD3.(H3)
	if !ok {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, errTypeMismatch(d.D3.info().key, mD3)
	}
	mD4, err := d.D4.materialize(ctx, r)
	if err != nil {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, err
	}
	hD4, ok := mD4.(H4)
	if !ok {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, errTypeMismatch(d.D4.info().key, mD4)
	}
	mD5, err := d.D5.materialize(ctx, r)
	if err != nil {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, err
	}
	hD5, ok := mD5.(H5)
	if !ok {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, errTypeMismatch(d.D5.info().key, mD5)
	}
	mD6, err := d.D6.materialize(ctx, r)
	if err != nil {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, err
	}
	hD6, ok := mD6.(H6)
	if !ok {
		return Deps6[H1, H2, H3, H4, H5, H6]{}, errTypeMismatch(d.D6.info().key, mD6)
	}
	return Deps6[H1, H2, H3, H4, H5, H6]{
		D1: hD1,
		D2: hD2,
		D3: hD3,
		D4: hD4,
		D5: hD5,
		D6: hD6,
	}, nil
}

// Deps7 is the 7-ary dependency tuple.
type Deps7[H1 depSlot, H2 depSlot, H3 depSlot, H4 depSlot, H5 depSlot, H6 depSlot, H7 depSlot] struct {
	D1 H1
	D2 H2
	D3 H3
	D4 H4
	D5 H5
	D6 H6
	D7 H7
}

// NewDeps7 declares a 7-ary dependency tuple from the given handles, in
// declaration order.
func NewDeps7[H1 depSlot, H2 depSlot, H3 depSlot, H4 depSlot, H5 depSlot, H6 depSlot, H7 depSlot](d1 H1, d2 H2, d3 H3, d4 H4, d5 H5, d6 H6, d7 H7) Deps7[H1, H2, H3, H4, H5, H6, H7] {
	return Deps7[H1, H2, H3, H4, H5, H6, H7]{
		D1: d1,
		D2: d2,
		D3: d3,
		D4: d4,
		D5: d5,
		D6: d6,
		D7: d7,
	}
}

func (d Deps7[H1, H2, H3, H4, H5, H6, H7]) sealed(sealToken) {}

func (d Deps7[H1, H2, H3, H4, H5, H6, H7]) typeIDs() []depInfo {
	return []depInfo{d.D1.info(), d.D2.info(), d.D3.info(), d.D4.info(), d.D5.info(), d.D6.info(), d.D7.info()}
}

func (d Deps7[H1, H2, H3, H4, H5, H6, H7]) materialize(ctx context.Context, r *Registry) (Deps7[H1, H2, H3, H4, H5, H6, H7], error) {
	mD1, err := d.D1.materialize(ctx, r)
	if err != nil {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, err
	}
	hD1, ok := mD1.(H1)
	if !ok {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, errTypeMismatch(d.D1.info().key, mD1)
	}
	mD2, err := d.D2.materialize(ctx, r)
	if err != nil {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, err
	}
	hD2, ok := mD2.(H2)
	if !ok {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, errTypeMismatch(d.D2.info().key, mD2)
	}
	mD3, err := d.D3.materialize(ctx, r)
	if err != nil {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, err
	}
	hD3, ok := mD3.(H3)
	if !ok {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, errTypeMismatch(d.D3.info().key, mD3)
	}
	mD4, err := d.D4.materialize(ctx, r)
	if err != nil {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, err
	}
	hD4, ok := mD4.(H4)
	if !ok {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, errTypeMismatch(d.D4.info().key, mD4)
	}
	mD5, err := d.D5.materialize(ctx, r)
	if err != nil {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, err
	}
	hD5, ok := mD5.(H5)
	if !ok {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, errTypeMismatch(d.D5.info().key, mD5)
	}
	mD6, err := d.D6.materialize(ctx, r)
	if err != nil {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, err
	}
	hD6, ok := mD6.(H6)
	if !ok {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, errTypeMismatch(d.D6.info().key, mD6)
	}
	mD7, err := d.D7.materialize(ctx, r)
	if err != nil {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, err
	}
	hD7, ok := mD7.(H7)
	if !ok {
		return Deps7[H1, H2, H3, H4, H5, H6, H7]{}, errTypeMismatch(d.D7.info().key, mD7)
	}
	return Deps7[H1, H2, H3, H4, H5, H6, H7]{
		D1: hD1,
		D2: hD2,
		D3: hD3,
		D4: hD4,
		D5: hD5,
		D6: hD6,
		D7: hD7,
	}, nil
}

// Deps8 is the 8-ary dependency tuple.
type Deps8[H1 depSlot, H2 depSlot, H3 depSlot, H4 depSlot, H5 depSlot, H6 depSlot, H7 depSlot, H8 depSlot] struct {
	D1 H1
	D2 H2
	D3 H3
	D4 H4
	D5 H5
	D6 H6
	D7 H7
	D8 H8
}

// NewDeps8 declares a 8-ary dependency tuple from the given handles, in
// declaration order.
func NewDeps8[H1 depSlot, H2 depSlot, H3 depSlot, H4 depSlot, H5 depSlot, H6 depSlot, H7 depSlot, H8 depSlot](d1 H1, d2 H2, d3 H3, d4 H4, d5 H5, d6 H6, d7 H7, d8 H8) Deps8[H1, H2, H3, H4, H5, H6, H7, H8] {
	return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{
		D1: d1,
		D2: d2,
		D3: d3,
		D4: d4,
		D5: d5,
		D6: d6,
		D7: d7,
		D8: d8,
	}
}

func (d Deps8[H1, H2, H3, H4, H5, H6, H7, H8]) sealed(sealToken) {}

func (d Deps8[H1, H2, H3, H4, H5, H6, H7, H8]) typeIDs() []depInfo {
	return []depInfo{d.D1.info(), d.D2.info(), d.D3.info(), d.D4.info(), d.D5.info(), d.D6.info(), d.D7.info(), d.D8.info()}
}

func (d Deps8[H1, H2, H3, H4, H5, H6, H7, H8]) materialize(ctx context.Context, r *Registry) (Deps8[H1, H2, H3, H4, H5, H6, H7, H8], error) {
	mD1, err := d.D1.materialize(ctx, r)
	if err != nil {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, err
	}
	hD1, ok := mD1.(H1)
	if !ok {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, errTypeMismatch(d.D1.info().key, mD1)
	}
	mD2, err := d.D2.materialize(ctx, r)
	if err != nil {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, err
	}
	hD2, ok := mD2.(H2)
	if !ok {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, errTypeMismatch(d.D2.info().key, mD2)
	}
	mD3, err := d.D3.materialize(ctx, r)
	if err != nil {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, err
	}
	hD3, ok := mD3.(H3)
	if !ok {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, errTypeMismatch(d.D3.info().key, mD3)
	}
	mD4, err := d.D4.materialize(ctx, r)
	if err != nil {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, err
	}
	hD4, ok := mD4.(H4)
	if !ok {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, errTypeMismatch(d.D4.info().key, mD4)
	}
	mD5, err := d.D5.materialize(ctx, r)
	if err != nil {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, err
	}
	hD5, ok := mD5.(H5)
	if !ok {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, errTypeMismatch(d.D5.info().key, mD5)
	}
	mD6, err := d.D6.materialize(ctx, r)
	if err != nil {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, err
	}
	hD6, ok := mD6.(H6)
	if !ok {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, errTypeMismatch(d.D6.info().key, mD6)
	}
	mD7, err := d.D7.materialize(ctx, r)
	if err != nil {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, err
	}
	hD7, ok := mD7.(H7)
	if !ok {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, errTypeMismatch(d.D7.info().key, mD7)
	}
	mD8, err := d.D8.materialize(ctx, r)
	if err != nil {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, err
	}
	hD8, ok := mD8.(H8)
	if !ok {
		return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{}, errTypeMismatch(d.D8.info().key, mD8)
	}
	return Deps8[H1, H2, H3, H4, H5, H6, H7, H8]{
		D1: hD1,
		D2: hD2,
		D3: hD3,
		D4: hD4,
		D5: hD5,
		D6: hD6,
		D7: hD7,
		D8: hD8,
	}, nil
}
