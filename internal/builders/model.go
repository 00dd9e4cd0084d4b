package builders

import (
	"fmt"

	"lcb/internal/buildtype"
	"lcb/internal/stub"
)

type ModelBuilder struct {
	baseBuilder
}

func NewModelBuilder(p Params) Builder {
	return &ModelBuilder{baseBuilder{p}}
}

func (b *ModelBuilder) Build() (string, error) {
	modelPath, err := b.path(buildtype.Model)
	if err != nil {
		return "", err
	}

	s, err := b.stub()
	if err != nil {
		return "", err
	}

	cs := b.CodeStructure
	entity := cs.Entity()

	belongsTo := ""
	if cs.HasBelongsTo() {
		belongsTo = cs.BelongsToInModel()
	}

	s.
		SetKey(stub.UseSoftDeletes.Key(), stub.UseSoftDeletes.Value()+"\n", cs.IsSoftDeletes()).
		SetKey(stub.SoftDeletes.Key(), stub.SoftDeletes.Value()+"\n\n", cs.IsSoftDeletes()).
		SetKey(stub.UseBelongsTo.Key(), stub.UseBelongsTo.Value()+"\n", cs.HasBelongsTo()).
		SetKey(stub.BelongsTo.Key(), belongsTo, belongsTo != "").
		SetKey(stub.Timestamps.Key(), stub.Timestamps.Value()+"\n\n", !cs.IsTimestamps()).
		SetKey(
			stub.Table.Key(),
			fmt.Sprintf("%s '%s';\n\n", stub.Table.Value(), cs.Table()),
			cs.Table() != entity.PluralSnake(),
		)

	return b.write(s, modelPath, map[string]string{
		"{namespace}": modelPath.Namespace(),
		"{class}":     entity.UcFirstSingular(),
		"{fillable}":  cs.ColumnsToModel(),
	})
}
