// Package model defines the mutable in-memory API graph that the enrichment
// pipeline rewrites: models with their properties, and operations with their
// responses and parameters.
//
// A graph is produced by an upstream contract parser and stored as YAML (or
// JSON, which the YAML decoder accepts):
//
//	title: Account API
//	models:
//	  - name: MobileSubscription
//	    properties:
//	      - name: billingAccount
//	        complexType: BillingAccountPerson
//	        dataTypeWithEnum: BillingAccountPerson
//	operations:
//	  - operationId: getMobileSubscription
//	    operationIdOriginal: mobile-subscriptions
//	    path: /mobile-subscription/{id}
//	    tags: [{name: mobile-subscription}]
//	    returnType: MobileSubscription
//	    accountType: paym
//
// Extension flags the original contract carried as free-form vendor
// extensions are typed fields here (IsMongoDocument, IsHiddenReference, ...).
package model
