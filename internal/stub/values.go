package stub

// Value is a fragment inserted into a stub only when a condition holds.
type Value string

const (
	UseSoftDeletes Value = "use_soft_deletes"
	SoftDeletes    Value = "soft_deletes"
	UseBelongsTo   Value = "use_belongs_to"
	BelongsTo      Value = "belongs_to"
	Timestamps     Value = "timestamps"
	Table          Value = "table"
)

func (v Value) Key() string {
	return "{" + string(v) + "}"
}

func (v Value) Value() string {
	switch v {
	case UseSoftDeletes:
		return `use Illuminate\Database\Eloquent\SoftDeletes;`
	case SoftDeletes:
		return "\tuse SoftDeletes;"
	case UseBelongsTo:
		return `use Illuminate\Database\Eloquent\Relations\BelongsTo;`
	case Timestamps:
		return "\tpublic $timestamps = false;"
	case Table:
		return "\tprotected $table ="
	default:
		return ""
	}
}
