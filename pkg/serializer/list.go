package serializer

// Length-prefixed collections pack as a VarUint32 element count followed by
// each element's encoding back-to-back, no per-element padding. The helpers
// are generic over any slice whose pointer-to-element implements Packer.

// SizeOfList returns the wire size of items: the count prefix plus every
// element's current size.
func SizeOfList[T any, PT interface {
	*T
	Packer
}](items []T) int {
	size := VarUint32(len(items)).Size()
	for i := range items {
		size += PT(&items[i]).Size()
	}
	return size
}

// PackList appends the count prefix and each element in order.
func PackList[T any, PT interface {
	*T
	Packer
}](enc *Encoder, items []T) int {
	pos := enc.Size()
	VarUint32(len(items)).Pack(enc)
	for i := range items {
		PT(&items[i]).Pack(enc)
	}
	return enc.Size() - pos
}

// UnpackList reads the count prefix, then unpacks that many elements into
// *items, replacing its previous contents.
func UnpackList[T any, PT interface {
	*T
	Packer
}](items *[]T, data []byte) (int, error) {
	var count VarUint32
	n, err := count.Unpack(data)
	if err != nil {
		return 0, err
	}
	// Every element occupies at least one byte, so a count exceeding the
	// remaining input is rejected before any allocation.
	if int(count) > len(data)-n {
		return 0, overflowError("UnpackList")
	}
	out := make([]T, int(count))
	for i := range out {
		k, err := PT(&out[i]).Unpack(data[n:])
		if err != nil {
			return 0, err
		}
		n += k
	}
	*items = out
	return n, nil
}
